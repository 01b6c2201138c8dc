package postgres

import (
	"context"
	"fmt"
	"stylist/pkg/domain"
	"stylist/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	itemsTable = "wardrobe_items"
)

// InsertItem stores a new wardrobe item and returns it with the
// database-assigned id and creation timestamp.
func (p *PgSQL) InsertItem(ctx context.Context, item domain.ClothingItem) (*domain.ClothingItem, error) {
	var pgItem PgItem
	if err := pgItem.FromDomain(item); err != nil {
		return nil, err
	}

	var row PgItem
	found, err := p.Builder.Insert(itemsTable).
		Rows(pgItem).
		Returning(&PgItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store item into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store item into pg: no row returned")
	}

	return row.ToDomain()
}

// ItemByID returns a single item by its ID, scoped to the given owner.
// A missing row or a row owned by someone else both return nil.
func (p *PgSQL) ItemByID(ctx context.Context, ownerID domain.UserID, id domain.ItemID) (*domain.ClothingItem, error) {
	var row PgItem
	found, err := p.Builder.From(itemsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("owner_id").Eq(string(ownerID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch item by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ItemsByOwner returns a page of the owner's wardrobe filtered by optional
// cursor and limited by limit. Results are ordered by created_at DESC, id DESC.
// NextCursor is set when more rows remain beyond this page.
func (p *PgSQL) ItemsByOwner(ctx context.Context,
	ownerID domain.UserID,
	cursor time.Time,
	limit uint) (storage.OwnerItems, error) {
	w := []goqu.Expression{
		goqu.I("owner_id").Eq(string(ownerID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(itemsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgItem
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.OwnerItems{}, fmt.Errorf("could not fetch owner items from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgItemsToDomain(rows)
	if err != nil {
		return storage.OwnerItems{}, err
	}

	return storage.OwnerItems{
		Items:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// ItemsByOwnerAndTags returns up to limit of the owner's items whose tags
// satisfy every given constraint, excluding excludeID when it is set. A
// constraint matches a scalar tag by equality and a list tag by membership,
// both expressed through JSONB containment so a single predicate covers both
// shapes. The exclusion is applied before the limit so a full page of other
// items is returned even when the excluded item would match.
func (p *PgSQL) ItemsByOwnerAndTags(ctx context.Context,
	ownerID domain.UserID,
	constraints domain.TagConstraints,
	excludeID domain.ItemID,
	limit uint) ([]domain.ClothingItem, error) {
	w := []goqu.Expression{
		goqu.I("owner_id").Eq(string(ownerID)),
	}
	for key, value := range constraints {
		w = append(w, goqu.L("(tags -> ?) @> to_jsonb(?::text)", key, value))
	}
	if uuid.UUID(excludeID) != uuid.Nil {
		w = append(w, goqu.I("id").Neq(uuid.UUID(excludeID)))
	}

	ds := p.Builder.From(itemsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit)

	var rows []PgItem
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch items by tags from pg: %w", err)
	}

	return pgItemsToDomain(rows)
}

// DeleteItem removes an item owned by the given user, returning the deleted
// record so callers can release its image. Returns nil when no matching row
// exists.
func (p *PgSQL) DeleteItem(ctx context.Context, ownerID domain.UserID, id domain.ItemID) (*domain.ClothingItem, error) {
	var row PgItem
	found, err := p.Builder.Delete(itemsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("owner_id").Eq(string(ownerID)),
		).Returning(&PgItem{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete item in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
