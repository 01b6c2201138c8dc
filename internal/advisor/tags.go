package advisor

import (
	"slices"
	"strings"
	"stylist/pkg/domain"
	"stylist/pkg/serrors"
)

// knownConstraintKeys lists the tag names a recommendation request may
// constrain on.
var knownConstraintKeys = []string{"category", "type", "season", "occasion"} //nolint: gochecknoglobals

// sanitizeTags validates model output at the trust boundary. The model is
// prompted for a closed vocabulary but its answer is still free text: an
// unknown category makes the item unusable for filtering and rejects the
// upload, while unknown seasons or occasions are silently dropped so one
// hallucinated value does not discard an otherwise good item.
func sanitizeTags(tags domain.Tags) (domain.Tags, error) {
	out := domain.Tags{
		Category: domain.Category(strings.ToLower(strings.TrimSpace(string(tags.Category)))),
		Type:     strings.TrimSpace(tags.Type),
	}
	if !out.Category.Valid() {
		return domain.Tags{}, serrors.With(serrors.ErrInvalidInput,
			"unknown item category %q", tags.Category)
	}

	out.Season = keepKnown(tags.Season, domain.KnownSeasons)
	out.Occasion = keepKnown(tags.Occasion, domain.KnownOccasions)

	return out, nil
}

// keepKnown lowercases the values and keeps those present in the vocabulary,
// preserving input order and dropping duplicates.
func keepKnown(values, vocabulary []string) []string {
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if slices.Contains(vocabulary, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}

// validateConstraints rejects constraint maps referencing unknown tag names
// or carrying empty values. Constraints come straight from the request body,
// so this is the only validation they get before reaching the store.
func validateConstraints(constraints domain.TagConstraints) error {
	for key, value := range constraints {
		if !slices.Contains(knownConstraintKeys, key) {
			return serrors.With(serrors.ErrInvalidInput, "unknown constraint %q", key)
		}
		if strings.TrimSpace(value) == "" {
			return serrors.With(serrors.ErrInvalidInput, "constraint %q has an empty value", key)
		}
	}

	return nil
}
