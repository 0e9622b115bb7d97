// Package sentinel implements a minimal container init: it holds PID 1, reaps
// orphaned children and exits cleanly on SIGINT or SIGTERM.
package sentinel

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"syscall"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	ExitOK                     = 0
	ExitInterruptInstallFailed = 1
	ExitTerminateInstallFailed = 2
	ExitChildInstallFailed     = 3
	ExitIdleLoopTerminated     = 42
)

const (
	VersionFlag = "-v"
	InitPid     = 1
)

var ErrIdleLoopTerminated = errors.New("infinite loop terminated")

// Handler reacts to a delivered signal. When terminate is true the sentinel
// exits with exitCode.
type Handler func(sig os.Signal) (exitCode int, terminate bool)

type Disposition struct {
	Signal  syscall.Signal
	Handler Handler
	// ExitCode is the status the sentinel exits with if this disposition
	// cannot be installed.
	ExitCode int
	// IgnoreStops asks for no delivery when a child merely stops. Only
	// meaningful for SIGCHLD.
	IgnoreStops bool
}

//go:generate counterfeiter . Installer
type Installer interface {
	Install(disposition Disposition, delivered chan<- os.Signal) error
}

//go:generate counterfeiter . Reaper
type Reaper interface {
	Drain() int
}

type Sentinel struct {
	Version   string
	Stdout    io.Writer
	Logger    lager.Logger
	Installer Installer
	Reaper    Reaper
	Getpid    func() int
}

// VersionRequested reports whether any argument is the version flag, ignoring
// case. Every other argument is ignored.
func VersionRequested(args []string) bool {
	for _, arg := range args {
		if strings.EqualFold(arg, VersionFlag) {
			return true
		}
	}

	return false
}

// Run executes the sentinel and returns the status the process should exit
// with. It only returns once a shutdown signal arrives or something fails.
func (s *Sentinel) Run(args []string) int {
	if VersionRequested(args) {
		fmt.Fprintf(s.Stdout, "pause.c %s\n", s.Version)
		return ExitOK
	}

	s.adviseRole()

	// One slot per disposition: os/signal drops a delivery when the slot is
	// full, so a SIGCHLD backlog can never displace a pending SIGTERM.
	dispositions := s.Dispositions()
	deliveries := make([]chan os.Signal, len(dispositions))
	for i, disposition := range dispositions {
		deliveries[i] = make(chan os.Signal, 1)
		if err := s.Installer.Install(disposition, deliveries[i]); err != nil {
			name := unix.SignalName(disposition.Signal)
			s.Logger.Error("installing-disposition-failed", errors.Wrapf(err, "installing %s disposition", name), lager.Data{
				"signal":      name,
				"exit-status": disposition.ExitCode,
			})
			return disposition.ExitCode
		}
	}

	return s.idle(dispositions, deliveries)
}

// Dispositions returns the table installed at startup, in installation order.
func (s *Sentinel) Dispositions() []Disposition {
	return []Disposition{
		{Signal: unix.SIGINT, Handler: s.shutdown, ExitCode: ExitInterruptInstallFailed},
		{Signal: unix.SIGTERM, Handler: s.shutdown, ExitCode: ExitTerminateInstallFailed},
		{Signal: unix.SIGCHLD, Handler: s.reap, ExitCode: ExitChildInstallFailed, IgnoreStops: true},
	}
}

func (s *Sentinel) adviseRole() {
	if pid := s.Getpid(); pid != InitPid {
		s.Logger.Info("not-running-as-init", lager.Data{
			"pid":     pid,
			"warning": "pause should be the first process",
		})
	}
}

func (s *Sentinel) idle(dispositions []Disposition, deliveries []chan os.Signal) int {
	cases := make([]reflect.SelectCase, len(deliveries))
	for i, delivered := range deliveries {
		cases[i] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(delivered)}
	}

	s.Logger.Info("idling")
	for {
		chosen, value, ok := reflect.Select(cases)
		if !ok {
			break
		}

		if exitCode, terminate := dispositions[chosen].Handler(value.Interface().(os.Signal)); terminate {
			return exitCode
		}
	}

	s.Logger.Error("infinite-loop-terminated", ErrIdleLoopTerminated)
	return ExitIdleLoopTerminated
}

func (s *Sentinel) shutdown(sig os.Signal) (int, bool) {
	data := lager.Data{"description": sig.String()}
	if signo, ok := sig.(syscall.Signal); ok {
		data["signal"] = unix.SignalName(signo)
		data["signo"] = int(signo)
	}

	s.Logger.Info("shutting-down-got-signal", data)
	return ExitOK, true
}

func (s *Sentinel) reap(os.Signal) (int, bool) {
	s.Reaper.Drain()
	return ExitOK, false
}
