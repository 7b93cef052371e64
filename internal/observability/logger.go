package observability

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the diagnostic logger. Debug output is enabled in verbose mode;
// otherwise only warnings and errors are emitted.
func NewLogger(verbose bool, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// DiscardLogger returns a logger that drops everything. Useful for tests.
func DiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
