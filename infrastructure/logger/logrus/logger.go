// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Maps the structured field maps onto logrus fields

package logrus

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Logger implements the core logging interface on top of logrus.
type Logger struct {
	logger *log.Logger
}

// New creates a logrus-backed logger emitting at the given level
// (debug/info/warn/error). An unknown level falls back to info.
func New(level string) *Logger {
	logger := log.New()
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
	return &Logger{logger: logger}
}

// SetOutput redirects log output, primarily for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}
