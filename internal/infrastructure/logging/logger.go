package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Unknown levels fall back to info.
func New(level string) *logrus.Logger {
	return NewWithOutput(level, os.Stdout)
}

func NewWithOutput(level string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Discard is a logger for tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// LogError logs err with the area and layer tags used across the service.
func LogError(logger logrus.FieldLogger, area, layer, event string, fields logrus.Fields, err error) {
	entry := logger.WithFields(logrus.Fields{"area": area, "layer": layer})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.WithError(err).Errorf("[%s][%s] %s", area, layer, event)
}
