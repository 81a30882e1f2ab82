package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// only error bodies are captured, and only up to this size
const maxLoggedBody = 4 << 10

type responseWriter struct {
	http.ResponseWriter
	body   *bytes.Buffer
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status >= http.StatusBadRequest && rw.body.Len() < maxLoggedBody {
		rest := maxLoggedBody - rw.body.Len()
		if len(b) < rest {
			rest = len(b)
		}
		rw.body.Write(b[:rest])
	}

	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// LoggingMiddleware writes one access log line per request: info for
// success, warn for client errors, error for server errors.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}

		next.ServeHTTP(rw, r)

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rw.status),
			slog.Int("bytes", rw.size),
			slog.Duration("duration", time.Since(start)),
		}
		if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
			attrs = append(attrs, slog.String("request_id", reqID))
		}

		switch {
		case rw.status >= http.StatusInternalServerError:
			slog.Error("request failed", append(attrs, slog.String("response_body", rw.body.String()))...)
		case rw.status >= http.StatusBadRequest:
			slog.Warn("request rejected", append(attrs, slog.String("response_body", rw.body.String()))...)
		default:
			slog.Info("request served", attrs...)
		}
	})
}
