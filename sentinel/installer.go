package sentinel

import (
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// NotifyInstaller routes signals to the sentinel through os/signal. The Go
// runtime owns the real sigaction flags, so IgnoreStops relies on the reap
// handler never collecting stopped children.
type NotifyInstaller struct{}

func (NotifyInstaller) Install(disposition Disposition, delivered chan<- os.Signal) error {
	name := unix.SignalName(disposition.Signal)
	if name == "" {
		return errors.Wrapf(unix.EINVAL, "unknown signal %d", int(disposition.Signal))
	}

	if disposition.Signal == unix.SIGKILL || disposition.Signal == unix.SIGSTOP {
		return errors.Wrapf(unix.EINVAL, "%s cannot be caught", name)
	}

	if disposition.IgnoreStops && disposition.Signal != unix.SIGCHLD {
		return errors.Wrapf(unix.EINVAL, "ignoring stops only applies to SIGCHLD, not %s", name)
	}

	if disposition.Handler == nil {
		return errors.Errorf("no handler for %s", name)
	}

	signal.Notify(delivered, disposition.Signal)
	return nil
}
