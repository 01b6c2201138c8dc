package storage

import (
	"context"
	"stylist/pkg/domain"
	"time"
)

// OwnerItems groups a page of wardrobe items returned for a user together
// with an optional NextCursor used for pagination.
type OwnerItems struct {
	// Items contains the current page of wardrobe items.
	Items []domain.ClothingItem
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// WardrobeStorage defines persistence operations over per-user clothing items.
// Every read and write is scoped by the owning user; an item id belonging to a
// different owner behaves exactly like an absent id.
type WardrobeStorage interface {
	// InsertItem stores a new wardrobe item and returns the stored row as it
	// exists in the database (including the generated id and timestamp).
	// Items are immutable once inserted; there is no update operation.
	InsertItem(ctx context.Context, item domain.ClothingItem) (*domain.ClothingItem, error)
	// ItemByID fetches an item by its id for the given owner.
	// Returns nil when the item does not exist or belongs to someone else.
	ItemByID(ctx context.Context, ownerID domain.UserID, id domain.ItemID) (*domain.ClothingItem, error)
	// ItemsByOwner returns a page of the owner's items created before the
	// optional cursor time, newest first, limited by limit.
	ItemsByOwner(ctx context.Context, ownerID domain.UserID, cursor time.Time, limit uint) (OwnerItems, error)
	// ItemsByOwnerAndTags returns up to limit of the owner's items whose tags
	// satisfy every constraint (scalar equality; list-valued tags match by
	// containment), excluding excludeID. The exclusion is applied before the
	// limit. Which items survive truncation when more than limit match is
	// store-specific and callers must not rely on a particular order.
	ItemsByOwnerAndTags(ctx context.Context,
		ownerID domain.UserID,
		constraints domain.TagConstraints,
		excludeID domain.ItemID,
		limit uint) ([]domain.ClothingItem, error)
	// DeleteItem removes the item with the given id for the given owner and
	// returns the deleted item, or nil if no owned item matched.
	DeleteItem(ctx context.Context, ownerID domain.UserID, id domain.ItemID) (*domain.ClothingItem, error)
}
