package logging

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
)

// SentryLogger forwards error level entries to Sentry and delegates
// everything to the wrapped logger. The hub attached to ctx by the HTTP
// middleware wins over the fallback hub.
type SentryLogger struct {
	logging.Logger
	hub *sentry.Hub
}

func NewSentryLogger(inner logging.Logger, hub *sentry.Hub) *SentryLogger {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if hub == nil {
		panic(e.NewNilArgumentError("hub"))
	}
	return &SentryLogger{Logger: inner, hub: hub}
}

func (l *SentryLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.Logger.Error(ctx, msg, entries...)

	hub := l.hub
	if ctx != nil {
		if fromCtx := sentry.GetHubFromContext(ctx); fromCtx != nil {
			hub = fromCtx
		}
	}

	var err error
	hub.WithScope(func(scope *sentry.Scope) {
		for _, entry := range entries {
			if entryErr, ok := entry.Value.(error); ok && entry.Key == "err" {
				err = entryErr
				continue
			}
			scope.SetExtra(entry.Key, entry.Value)
		}
		if err == nil {
			err = errors.New(msg)
		} else {
			scope.SetExtra("message", msg)
		}
		hub.CaptureException(err)
	})
}
