package logging

import (
	"io"

	"code.cloudfoundry.org/lager/v3"
)

// NewLogger returns a logger for component that writes human readable lines
// at info level and above to w.
func NewLogger(component string, w io.Writer) lager.Logger {
	logger := lager.NewLogger(component)
	logger.RegisterSink(lager.NewPrettySink(w, lager.INFO))

	return logger
}
