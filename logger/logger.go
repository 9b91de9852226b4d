package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

const requestIDKey = "request_id"

var log = New("info")

// New builds a JSON logger for the service. Unknown levels fall back to info.
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Setup replaces the package logger used by FromContext.
func Setup(l *logrus.Logger) {
	log = l
}

func Get() *logrus.Logger {
	return log
}

// WithRequestID stores the request id in ctx so every log line written for
// the request can be correlated.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField(requestIDKey, id)
	}
	return entry
}
