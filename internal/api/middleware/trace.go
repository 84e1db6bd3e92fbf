// Package middleware contains HTTP middleware specific to the blog API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/blogdev/blog-api/internal/api/shared"
	"github.com/blogdev/blog-api/internal/platform/logger"
	"go.opentelemetry.io/otel/trace"
)

// TraceMiddleware adds a trace ID and a request-scoped logger to the
// request context. When an OpenTelemetry span is active its trace ID is
// reused so logs and exported spans share one identifier.
//
// It should be applied early in the chain so later handlers see both values.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := shared.NewTraceID()
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				traceID = sc.TraceID().String()
			}

			log := base.With(slog.String("trace_id", traceID))

			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
