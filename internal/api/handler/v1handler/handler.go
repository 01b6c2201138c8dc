// Package v1handler implements the v1 HTTP handlers for the wardrobe and
// recommendation endpoints, plus the bearer-auth middleware guarding them.
package v1handler

import (
	"context"
	"encoding/json"
	"net/http"
	"stylist/internal/advisor"
	"stylist/internal/config"
	"stylist/pkg/logger"
	"stylist/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when the caller does not specify one.
	DefaultLimit = 20
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// Options tunes request handling limits.
type Options struct {
	// MaxImageBytes is the largest accepted image payload.
	MaxImageBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxImageBytes: cfg.Upload.MaxImageBytes,
	}
}

// Deps carries the use-case dependencies of the handlers.
type Deps struct {
	Advisor advisor.Advisor
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// Routes registers the v1 endpoints on the given router. The router is
// expected to already carry the auth middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/wardrobe", h.ListItems)
	r.Post("/wardrobe/items", h.AddItem)
	r.Delete("/wardrobe/items/{itemID}", h.DeleteItem)
	r.Post("/recommendations", h.Recommend)
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Serialization failures are
// logged; at that point the status line is already written and nothing more
// can be done for the caller.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not write response", zap.Error(err))
	}
}

// writeError maps the semantic kind of err to an HTTP status and writes the
// error body. Errors outside the taxonomy are logged with full detail and
// surfaced as an opaque 500 so internals never leak to callers.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)

	var status int
	switch kind {
	case serrors.ErrInvalidCredential:
		status = http.StatusUnauthorized
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	case serrors.ErrInvalidInput:
		status = http.StatusBadRequest
	case serrors.ErrUpstream:
		status = http.StatusBadGateway
	default:
		logger.Error(ctx, "request failed", zap.Error(err))
		writeJSON(ctx, w, http.StatusInternalServerError, errorBody{
			Code:    serrors.ErrUnknown.Error(),
			Message: "internal error",
		})

		return
	}

	writeJSON(ctx, w, status, errorBody{
		Code:    kind.Error(),
		Message: err.Error(),
	})
}
