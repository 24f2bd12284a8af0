// Package logging constructs the shared CLI logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the stderr logger used across the CLI. Debug mode turns
// on debug-level output; otherwise only warnings and errors are shown so
// command output stays clean for scripting.
func NewLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
