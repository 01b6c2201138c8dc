package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemID uniquely identifies a wardrobe item.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ItemID uuid.UUID

// Category classifies a clothing item into one of a small closed set of
// wardrobe slots. Unknown categories are rejected at the trust boundary
// rather than stored silently.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryOuterwear Category = "outerwear"
	CategoryAccessory Category = "accessory"
)

// Categories lists every valid Category value.
func Categories() []Category {
	return []Category{CategoryTop, CategoryBottom, CategoryShoes, CategoryOuterwear, CategoryAccessory}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryShoes, CategoryOuterwear, CategoryAccessory:
		return true
	}

	return false
}

// Seasons and occasions a tagging collaborator may assign. Values outside
// these sets are dropped at the trust boundary.
var (
	KnownSeasons   = []string{"spring", "summer", "autumn", "winter"}   //nolint: gochecknoglobals
	KnownOccasions = []string{"casual", "work", "formal", "party", "sporty"} //nolint: gochecknoglobals
)

// Tags is the attribute set produced by the tagging collaborator for an item.
// Category and Type are single-valued; Season and Occasion are open lists
// drawn from the known vocabularies. Tags are read-only once the item is
// stored.
type Tags struct {
	// Category is the wardrobe slot of the item, e.g. "top".
	Category Category `json:"category"`
	// Type is a free-form description of the item, e.g. "t-shirt" or "sneakers".
	Type string `json:"type,omitempty"`
	// Season lists the seasons the item suits.
	Season []string `json:"season,omitempty"`
	// Occasion lists the occasions the item suits.
	Occasion []string `json:"occasion,omitempty"`
}

// ClothingItem represents a single item in a user's digital wardrobe.
// Items are immutable once stored: they are created by the upload flow,
// read by listing and recommendation flows, and removed only by their owner.
type ClothingItem struct {
	// ID is the unique identifier of the item, assigned by the store.
	ID ItemID `json:"id"`
	// OwnerID identifies the user who owns the item. Set at creation,
	// never changed.
	OwnerID UserID `json:"ownerId"`

	// ImageKey is the object-store key of the item's image.
	ImageKey string `json:"imageKey"`
	// Category is the wardrobe slot of the item, duplicated out of Tags
	// because it is the primary filtering attribute.
	Category Category `json:"category"`
	// Tags holds the full attribute set assigned by the tagging collaborator.
	Tags Tags `json:"tags"`
	// Embedding is the item's position in the compatibility vector space.
	// Its length is fixed by the embedding model and identical for every
	// item in the store.
	Embedding []float32 `json:"embedding"`

	// CreatedAt is the time the item was stored.
	CreatedAt time.Time `json:"createdAt"`
}

// TagConstraints is a set of attribute equality constraints used to narrow a
// wardrobe, keyed by tag name (e.g. "category", "season"). A constraint
// matches when the item's tag value equals it, or, for list-valued tags,
// contains it. No partial or range semantics.
type TagConstraints map[string]string
