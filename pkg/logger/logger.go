// Package logger provides the shop's structured logger built on log/slog.
//
// The request middleware stores a per-request logger (pre-tagged with the
// request ID) in the context; WithCtx retrieves it so every log line from
// a handler or service is automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("purchase recorded", "sweet_id", id, "quantity", qty)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/sweetshop/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		// structured JSON for log aggregators
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		// human-readable for dev
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// EnableMongo fans log records out to an async MongoDB handler in
// addition to stdout. Returns the handler so the caller can Close it at
// shutdown. No-op (nil, nil) when uri is empty.
func EnableMongo(uri, db, coll string) (*MongoHandler, error) {
	if uri == "" {
		return nil, nil
	}

	mh, err := NewMongoHandler(uri, db, coll)
	if err != nil {
		return nil, err
	}

	L = slog.New(NewTeeHandler(L.Handler(), mh))
	slog.SetDefault(L)
	return mh, nil
}

type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger stored by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped *slog.Logger into ctx. Called by
// the Logger middleware; application code reads it back via WithCtx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
