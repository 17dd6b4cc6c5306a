package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

type contextKey string

const loggerKey contextKey = "requestLogger"

// RequestIDHeader carries the per-request id back to the client.
const RequestIDHeader = "X-Request-Id"

// GetLogger returns the request-scoped logger stored by RequestLogger, or the
// global logger when the request did not pass through it.
func GetLogger(r *http.Request) *zap.Logger {
	if r != nil {
		if l, ok := r.Context().Value(loggerKey).(*zap.Logger); ok {
			return l
		}
	}
	return zap.L()
}

// RequestLogger tags each request with an id, stores a child logger in the
// request context and logs the outcome once the handler chain returns.
func RequestLogger() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		e.Response.Header().Set(RequestIDHeader, id)

		l := zap.L().With(
			zap.String("request_id", id),
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
		)
		e.Request = e.Request.WithContext(context.WithValue(e.Request.Context(), loggerKey, l))

		start := time.Now()
		err := e.Next()
		fields := []zap.Field{zap.Duration("duration", time.Since(start))}
		if e.Request.Header.Get("HX-Request") == "true" {
			fields = append(fields, zap.Bool("htmx", true))
		}
		if err != nil {
			l.Warn("request failed", append(fields, zap.Error(err))...)
			return err
		}
		l.Debug("request", fields...)
		return nil
	}
}
