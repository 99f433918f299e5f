// Package logger holds the process-wide structured logger
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger; it discards everything until Init is called
// The terminal is owned by the renderer, so output never goes to stdout
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Init points the global logger at out
// level is a logrus level name, unknown names fall back to info
// format "json" selects the JSON formatter, anything else plain text
func Init(out io.Writer, level, format string) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	l.SetOutput(out)
	Log = l
}

// Discard silences the global logger
func Discard() {
	Log = newDiscard()
}
