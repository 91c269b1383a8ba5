// Package logging builds the structured logger shared by every host.
//
// Output goes to stderr by default: stdout is owned by the MCP stdio
// transport and by the CLI's rendered cards.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New creates a logger at the given level and format writing to out.
// An unknown level falls back to info with a warning; a nil out means stderr.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if strings.ToLower(format) == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if level == "" {
		level = "info"
	}
	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("invalid log level, using info")
	}

	return log
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// WithCourse tags an entry with the course id.
func WithCourse(log logrus.FieldLogger, courseID string) *logrus.Entry {
	return log.WithField("course_id", courseID)
}

// WithRound tags an entry with the round and course ids.
func WithRound(log logrus.FieldLogger, roundID, courseID string) *logrus.Entry {
	fields := logrus.Fields{"round_id": roundID}
	if courseID != "" {
		fields["course_id"] = courseID
	}
	return log.WithFields(fields)
}

// WithKey tags an entry with a store key.
func WithKey(log logrus.FieldLogger, key string) *logrus.Entry {
	return log.WithField("key", key)
}
