package v1handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"stylist/pkg/domain"
	"stylist/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// itemList is the wire shape of a wardrobe page.
type itemList struct {
	Items      []domain.ClothingItem `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

// ListItems returns a page of the caller's wardrobe.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			writeError(ctx, w, serrors.With(serrors.ErrInvalidInput, "invalid limit %q", raw))

			return
		}
		limit = min(uint(parsed), MaxLimit)
	}

	items, nextCursor, err := h.deps.Advisor.Items(ctx,
		GetUserIDFromContext(ctx),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if items == nil {
		items = []domain.ClothingItem{}
	}

	writeJSON(ctx, w, http.StatusOK, itemList{
		Items:      items,
		NextCursor: nextCursor,
	})
}

// AddItem accepts a multipart image upload and stores the resulting item.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, serrors.With(serrors.ErrInvalidInput,
				"image exceeds the %d byte limit", tooLarge.Limit))

			return
		}
		writeError(ctx, w, serrors.Wrap(serrors.ErrInvalidInput, err, `missing "image" form file`))

		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInvalidInput, err, "could not read image"))

		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}

	item, err := h.deps.Advisor.AddItem(ctx, GetUserIDFromContext(ctx), image, contentType)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, item)
}

// DeleteItem removes an item owned by the caller.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInvalidInput, err, "invalid item id"))

		return
	}

	if err := h.deps.Advisor.Delete(ctx, GetUserIDFromContext(ctx), domain.ItemID(itemID)); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
