package internal

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RunStats counts what one run did. Single goroutine, no atomics needed.
type RunStats struct {
	start        time.Time
	FilesFound   int
	FilesScanned int
	FilesSkipped int
	FilesMatched int
	Matches      int
	Errors       int
}

func (s *RunStats) Start() {
	s.start = time.Now()
}

func (s *RunStats) Elapsed() time.Duration {
	return time.Since(s.start)
}

func (s *RunStats) Log() {
	logrus.WithFields(logrus.Fields{
		"found":   s.FilesFound,
		"scanned": s.FilesScanned,
		"skipped": s.FilesSkipped,
		"matched": s.FilesMatched,
		"matches": s.Matches,
		"errors":  s.Errors,
		"elapsed": s.Elapsed(),
	}).Debug("Search finished")
}
