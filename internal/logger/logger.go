package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// requestIDKey is the context key the request middleware stores its id under.
type contextKey string

// RequestIDKey is the context key carrying the per-request id.
const RequestIDKey contextKey = "request_id"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request id from the context, if any
func WithContext(ctx context.Context) *Logger {
	log := New()
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		log.Entry = log.Entry.WithField("request_id", id)
	}
	return log
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
