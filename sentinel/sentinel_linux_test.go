package sentinel_test

import (
	"os/exec"
	"syscall"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Sentinel receiving real signals", func() {
	var session *gexec.Session

	BeforeEach(func() {
		var err error
		session, err = gexec.Start(exec.Command(slowReaperBinPath), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session.Err).Should(gbytes.Say("pause.idling"))
	})

	AfterEach(func() {
		session.Kill().Wait()
	})

	DescribeTable("shutting down behind a flood of SIGCHLDs",
		func(sig syscall.Signal, name string) {
			for i := 0; i < 40; i++ {
				session.Signal(syscall.SIGCHLD)
				time.Sleep(2 * time.Millisecond)
			}
			session.Signal(sig)

			Eventually(session, 5*time.Second).Should(gexec.Exit(0))
			Expect(session.Err).To(gbytes.Say("pause.shutting-down-got-signal"))
			Expect(session.Err).To(gbytes.Say(name))
		},
		Entry("SIGINT", syscall.SIGINT, "SIGINT"),
		Entry("SIGTERM", syscall.SIGTERM, "SIGTERM"),
	)
})
