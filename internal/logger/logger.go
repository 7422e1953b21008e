// Package logger adapts charmbracelet/log's logger with the options
// this module's packages share: a named prefix, no caller reporting,
// and the process-wide level set via log.SetLevel.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger for prefix that reports timestamps, for
// long-running commands (load, rebuild).
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Quiet creates a logger for prefix without timestamps, for
// short-lived CLI invocations where the timestamp is just noise.
func Quiet(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
