// Command slowreaper runs a sentinel whose reaps take a while, so that tests
// can pile SIGCHLDs up behind a shutdown signal.
package main

import (
	"os"
	"time"

	"code.cloudfoundry.org/pause/logging"
	"code.cloudfoundry.org/pause/sentinel"
	"golang.org/x/sys/unix"
)

type slowReaper struct{}

func (slowReaper) Drain() int {
	time.Sleep(200 * time.Millisecond)
	return 0
}

func main() {
	s := &sentinel.Sentinel{
		Version:   "slowreaper",
		Stdout:    os.Stdout,
		Logger:    logging.NewLogger("pause", os.Stderr),
		Installer: sentinel.NotifyInstaller{},
		Reaper:    slowReaper{},
		Getpid:    unix.Getpid,
	}

	os.Exit(s.Run(os.Args[1:]))
}
