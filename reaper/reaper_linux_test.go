package reaper_test

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/pause/reaper"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reaper with real children", func() {
	var r *reaper.Reaper

	BeforeEach(func() {
		r = reaper.New(lagertest.NewTestLogger("reaper"))
	})

	It("reaps every zombie in a single drain", func() {
		var pids []int
		for i := 0; i < 5; i++ {
			cmd := exec.Command("true")
			Expect(cmd.Start()).To(Succeed())
			pids = append(pids, cmd.Process.Pid)
		}

		for _, pid := range pids {
			Eventually(processState(pid)).Should(Equal("Z"))
		}

		Expect(r.Drain()).To(BeNumerically(">=", len(pids)))

		for _, pid := range pids {
			Expect(fmt.Sprintf("/proc/%d", pid)).NotTo(BeADirectory())
		}
	})

	It("returns immediately when there are no children", func() {
		Expect(r.Drain()).To(Equal(0))
	})

	Context("when a child is stopped", func() {
		var cmd *exec.Cmd

		BeforeEach(func() {
			cmd = exec.Command("sleep", "100")
			Expect(cmd.Start()).To(Succeed())
			Expect(syscall.Kill(cmd.Process.Pid, syscall.SIGSTOP)).To(Succeed())
			Eventually(processState(cmd.Process.Pid)).Should(Equal("T"))
		})

		AfterEach(func() {
			Expect(cmd.Process.Kill()).To(Succeed())
			_, err := cmd.Process.Wait()
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves it alone", func() {
			Expect(r.Drain()).To(Equal(0))
			Expect(processState(cmd.Process.Pid)()).To(Equal("T"))
		})
	})
})

func processState(pid int) func() string {
	return func() string {
		stat, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
		if err != nil {
			return ""
		}

		// the command name may contain spaces, the state follows its closing paren
		fields := strings.Fields(string(stat[strings.LastIndex(string(stat), ")")+1:]))
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	}
}
