package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger returns the diagnostic logger. Game output never goes through
// it, so by default only warnings and errors show.
func SetupLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
