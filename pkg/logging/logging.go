package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleLogger returns a plain-text logger writing to stderr.
func ConsoleLogger(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}
