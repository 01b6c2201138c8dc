package postgres

import (
	"encoding/json"
	"fmt"
	"stylist/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type PgItem struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	OwnerID string    `db:"owner_id"`

	ImageKey  string          `db:"image_key"`
	Category  string          `db:"category"`
	Tags      json.RawMessage `db:"tags"`
	Embedding pgvector.Vector `db:"embedding"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgItem) ToDomain() (*domain.ClothingItem, error) {
	var tags domain.Tags
	if err := json.Unmarshal(p.Tags, &tags); err != nil {
		return nil, fmt.Errorf("could not unmarshal item tags: %w", err)
	}

	return &domain.ClothingItem{
		ID:        domain.ItemID(p.ID),
		OwnerID:   domain.UserID(p.OwnerID),
		ImageKey:  p.ImageKey,
		Category:  domain.Category(p.Category),
		Tags:      tags,
		Embedding: p.Embedding.Slice(),
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgItem) FromDomain(item domain.ClothingItem) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("could not marshal item tags: %w", err)
	}

	*p = PgItem{
		ID:        uuid.UUID(item.ID),
		OwnerID:   string(item.OwnerID),
		ImageKey:  item.ImageKey,
		Category:  string(item.Category),
		Tags:      tags,
		Embedding: pgvector.NewVector(item.Embedding),
		CreatedAt: item.CreatedAt,
	}

	return nil
}

func pgItemsToDomain(items []PgItem) ([]domain.ClothingItem, error) {
	out := make([]domain.ClothingItem, 0, len(items))
	for _, item := range items {
		d, err := item.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
