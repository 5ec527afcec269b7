// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init initializes the default logger. Debug enables debug output;
// noColor forces plain text.
func Init(debug, noColor bool) {
	InitWriter(os.Stderr, debug, noColor)
}

// InitWriter initializes the default logger writing to w.
func InitWriter(w io.Writer, debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    debug,
			ReportTimestamp: false,
			TimeFormat:      time.RFC3339,
			Prefix:          "svcsim",
		}))

	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
