// Package logging holds burrow's diagnostic logger. Status lines and
// rendered scripts are program output and never go through it.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug logging when set to "1" or "true".
const DebugEnv = "BURROW_DEBUG"

// Logger is the process-wide logger. It writes to stderr at warn level
// until SetDebug is called.
var Logger = New(os.Stderr)

// New builds a logger writing to w.
func New(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetDebug switches Logger between debug and warn level.
func SetDebug(enabled bool) {
	if enabled {
		Logger.SetLevel(logrus.DebugLevel)
		return
	}
	Logger.SetLevel(logrus.WarnLevel)
}

// DebugFromEnv reports whether DebugEnv asks for debug logging.
func DebugFromEnv() bool {
	v := strings.TrimSpace(os.Getenv(DebugEnv))
	return v == "1" || strings.EqualFold(v, "true")
}
