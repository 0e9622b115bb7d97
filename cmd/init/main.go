package main

import (
	"os"

	"code.cloudfoundry.org/pause/logging"
	"code.cloudfoundry.org/pause/reaper"
	"code.cloudfoundry.org/pause/sentinel"
	"golang.org/x/sys/unix"
)

// overridden at link time with -ldflags "-X main.version=..."
var version = "HEAD"

func main() {
	logger := logging.NewLogger("pause", os.Stderr)

	s := &sentinel.Sentinel{
		Version:   version,
		Stdout:    os.Stdout,
		Logger:    logger,
		Installer: sentinel.NotifyInstaller{},
		Reaper:    reaper.New(logger),
		Getpid:    unix.Getpid,
	}

	os.Exit(s.Run(os.Args[1:]))
}
