package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger initializes the logger with optional file output.
// Diagnostics go to stderr unless a log file is given; stdout carries results only.
func InitLogger(logfile, level string) {
	configureLogger(logrus.StandardLogger(), os.Stderr, logfile, level)
}

func configureLogger(l *logrus.Logger, stderr io.Writer, logfile, level string) {
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
		PadLevelText:  true,
	})
	l.SetOutput(stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	l.SetLevel(lvl)
	if err != nil && level != "" {
		l.WithField("level", level).Warn("Unknown log level, using warn")
	}

	if logfile != "" {
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			l.SetOutput(file)
		} else {
			l.WithError(err).Warn("Failed to open log file, logging to stderr")
		}
	}
}
