package commands

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a stderr logger. Stdout is reserved for command output.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "billgraph",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
