package v1handler

import (
	"encoding/json"
	"net/http"
	"stylist/pkg/domain"
	"stylist/pkg/serrors"

	"github.com/google/uuid"
)

// recommendRequest is the wire shape of a recommendation request. Filters
// narrow the caller's wardrobe before ranking; an absent map means the whole
// wardrobe competes.
type recommendRequest struct {
	InputItemID uuid.UUID             `json:"inputItemId"`
	Filters     domain.TagConstraints `json:"filters"`
}

// recommendation mirrors advisor.Recommendation on the wire.
type recommendation struct {
	Item               domain.ClothingItem `json:"item"`
	CompatibilityScore float64             `json:"compatibilityScore"`
}

type recommendationList struct {
	Recommendations []recommendation `json:"recommendations"`
}

// Recommend ranks the caller's wardrobe against the given reference item.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInvalidInput, err, "invalid request body"))

		return
	}
	if req.InputItemID == uuid.Nil {
		writeError(ctx, w, serrors.With(serrors.ErrInvalidInput, "inputItemId is required"))

		return
	}

	recs, err := h.deps.Advisor.Recommend(ctx,
		GetUserIDFromContext(ctx),
		domain.ItemID(req.InputItemID),
		req.Filters)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := recommendationList{Recommendations: make([]recommendation, 0, len(recs))}
	for _, rec := range recs {
		out.Recommendations = append(out.Recommendations, recommendation{
			Item:               rec.Item,
			CompatibilityScore: rec.Score,
		})
	}

	writeJSON(ctx, w, http.StatusOK, out)
}
