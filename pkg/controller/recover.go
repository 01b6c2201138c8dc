package controller

import (
	"net/http"
	"stylist/pkg/logger"

	"go.uber.org/zap"
)

// WithRecovery returns a middleware that catches panics escaping the
// downstream handler, logs them with full detail and answers with a generic
// 500 body. The panic value itself is never exposed to the caller.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error(r.Context(), "panic while handling request",
					zap.Any("panic", p),
					zap.String("url", r.URL.String()),
					zap.String("method", r.Method),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":"UNKNOWN","message":"internal error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
