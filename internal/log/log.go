// Package log configures a single package-global logrus logger shared by
// cmd/triads and store, mirroring operator-lifecycle-manager's direct
// "github.com/sirupsen/logrus" usage rather than a facade interface.
package log

import (
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// SetDebug raises the logger to debug level when v is true, info
// otherwise — wired to the CLI's hidden --debug flag.
func SetDebug(v bool) {
	if v {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// L returns the shared logger.
func L() *logrus.Logger { return logger }
