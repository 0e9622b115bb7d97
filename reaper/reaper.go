// Package reaper collects the exit status of terminated children so they do
// not linger as zombies.
package reaper

import (
	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/sys/unix"
)

// Wait4Func has the signature of unix.Wait4.
type Wait4Func func(pid int, wstatus *unix.WaitStatus, options int, rusage *unix.Rusage) (int, error)

type Reaper struct {
	Wait4  Wait4Func
	Logger lager.Logger
}

func New(logger lager.Logger) *Reaper {
	return &Reaper{Wait4: unix.Wait4, Logger: logger}
}

// Drain reaps every child that has already exited and returns how many it
// collected. It never blocks: when no exited child is left it returns, even if
// live children remain. Stopped children are not collected because WUNTRACED
// is never passed.
//
// SIGCHLD deliveries coalesce, so a single call must empty the whole backlog.
func (r *Reaper) Drain() int {
	log := r.Logger.Session("drain")

	reaped := 0
	for {
		var status unix.WaitStatus
		pid, err := r.Wait4(-1, &status, unix.WNOHANG, nil)
		switch err {
		case nil:
			if pid > 0 {
				reaped++
				log.Debug("reaped", lager.Data{"pid": pid, "exit-status": status.ExitStatus()})
				continue
			}
			return reaped
		case unix.EINTR:
			continue
		case unix.ECHILD:
			return reaped
		default:
			log.Error("wait4-failed", err, lager.Data{"reaped": reaped})
			return reaped
		}
	}
}
