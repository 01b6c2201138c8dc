package v1handler

import (
	"context"
	"net/http"
	"strings"
	"stylist/pkg/domain"
	"stylist/pkg/logger"

	"go.uber.org/zap"
)

// TokenVerifier validates a bearer token and returns the identity it asserts.
// internal/auth.Verifier is the production implementation.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.UserID, error)
}

type userIDKeyType struct{}

// userIDKey is the context key under which the verified caller identity is
// stored by WithAuth.
var userIDKey userIDKeyType //nolint: gochecknoglobals

// GetUserIDFromContext returns the verified caller identity set by WithAuth.
// It is empty only for requests that bypassed the middleware.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(userIDKey).(domain.UserID)

	return id
}

// ContextWithUserID returns a context carrying the given identity. Intended
// for tests exercising handlers without the middleware.
func ContextWithUserID(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// WithAuth verifies the bearer token on every request and injects the caller
// identity into the request context and the request-scoped logger. Requests
// without a valid credential never reach the handlers.
func WithAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, err := verifier.Verify(ctx, bearerToken(r))
			if err != nil {
				writeError(ctx, w, err)

				return
			}

			ctx = ContextWithUserID(ctx, userID)
			ctx = logger.WithFields(ctx, zap.String("userId", string(userID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header, or returns
// an empty string when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	return ""
}
