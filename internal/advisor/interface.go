package advisor

import (
	"context"
	"stylist/pkg/domain"
)

// Recommendation pairs a wardrobe item with its compatibility score relative
// to the reference item. Lower scores mean closer in the embedding space and
// therefore more compatible.
type Recommendation struct {
	Item  domain.ClothingItem `json:"item"`
	Score float64             `json:"score"`
}

//go:generate mockgen -package mockadvisor -source=interface.go -destination=mock/mockadvisor.go *
type Advisor interface {
	// AddItem tags and embeds the uploaded image, stores the image and the
	// resulting item, and returns the stored item.
	AddItem(ctx context.Context, ownerID domain.UserID, image []byte, contentType string) (*domain.ClothingItem, error)
	// Items returns a page of the owner's wardrobe with an opaque cursor
	// for fetching the next page.
	Items(ctx context.Context, ownerID domain.UserID, cursor string, limit uint) ([]domain.ClothingItem, string, error)
	// Delete removes an item and schedules its image for cleanup.
	Delete(ctx context.Context, ownerID domain.UserID, itemID domain.ItemID) error
	// Recommend ranks the owner's items matching the constraints by
	// compatibility with the reference item.
	Recommend(ctx context.Context,
		ownerID domain.UserID,
		itemID domain.ItemID,
		constraints domain.TagConstraints) ([]Recommendation, error)
}
