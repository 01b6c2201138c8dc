// Package advisor implements the wardrobe and recommendation use cases: item
// upload with tagging and embedding, listing, deletion, and filter-then-rank
// outfit recommendations.
package advisor

import (
	"context"
	"fmt"
	"stylist/internal/config"
	"stylist/pkg/domain"
	"stylist/pkg/embedder"
	"stylist/pkg/logger"
	"stylist/pkg/serrors"
	"stylist/pkg/storage"
	"stylist/pkg/tagger"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// imageExtensions maps the accepted upload content types to object key
// extensions. Anything absent here is rejected before talking to the models.
var imageExtensions = map[string]string{ //nolint: gochecknoglobals
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Options configure the recommendation flow and background cleanup.
// These settings are typically derived from application configuration.
type Options struct {
	// CandidateLimit caps how many filtered candidates are ranked per
	// recommendation request.
	CandidateLimit uint
	// TopK is the maximum number of recommendations returned.
	TopK uint
	// CleanupMaxAttempts is the retry budget for image cleanup jobs.
	CleanupMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CandidateLimit:     cfg.Recommend.CandidateLimit,
		TopK:               cfg.Recommend.TopK,
		CleanupMaxAttempts: cfg.Worker.MaxAttempts,
	}
}

// advisor is the concrete implementation of the Advisor interface. It
// coordinates the tagging and embedding collaborators with the item and image
// stores.
type advisor struct {
	options  Options
	storage  storage.Storage
	images   storage.ImageStore
	tagger   tagger.Client
	embedder embedder.Client
}

// AddItem runs the upload flow: the image is tagged and embedded, uploaded to
// the object store, and only then recorded in the database. Nothing about the
// item is persisted in the database until both model calls have succeeded, so
// a failing collaborator never leaves a half-described item behind. If the
// final insert fails the uploaded image is removed best-effort; a leaked
// object is preferable to a dangling database row.
func (a advisor) AddItem(ctx context.Context,
	ownerID domain.UserID,
	image []byte,
	contentType string) (*domain.ClothingItem, error) {
	if len(image) == 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "image is empty")
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, serrors.With(serrors.ErrInvalidInput, "unsupported content type %q", contentType)
	}

	rawTags, err := a.tagger.Tag(ctx, image, contentType)
	if err != nil {
		return nil, fmt.Errorf("could not tag image: %w", err)
	}
	tags, err := sanitizeTags(rawTags)
	if err != nil {
		return nil, err
	}

	embedding, err := a.embedder.Embed(ctx, image, contentType)
	if err != nil {
		return nil, fmt.Errorf("could not embed image: %w", err)
	}

	imageKey := fmt.Sprintf("%s/%s%s", ownerID, uuid.New(), ext)
	if err := a.images.PutImage(ctx, imageKey, image, contentType); err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not store image")
	}

	item, err := a.storage.InsertItem(ctx, domain.ClothingItem{
		OwnerID:   ownerID,
		ImageKey:  imageKey,
		Category:  tags.Category,
		Tags:      tags,
		Embedding: embedding,
	})
	if err != nil {
		if delErr := a.images.DeleteImage(ctx, imageKey); delErr != nil {
			logger.Warn(ctx, "could not remove image after failed insert",
				zap.String("imageKey", imageKey),
				zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not store item: %w", err)
	}

	return item, nil
}

// Items returns a page of the owner's wardrobe. It supports cursor-based
// pagination using an RFC3339 timestamp string and returns the next cursor
// when more results are available.
func (a advisor) Items(ctx context.Context,
	ownerID domain.UserID,
	cursor string,
	limit uint) ([]domain.ClothingItem, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrInvalidInput, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := a.storage.ItemsByOwner(ctx, ownerID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get owner items: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Items, next, nil
}

// Delete removes an item belonging to the given owner and enqueues a cleanup
// job for its image in the same transaction. If the item does not exist or is
// owned by someone else, a not-found error is returned; the two cases are
// indistinguishable to the caller.
func (a advisor) Delete(ctx context.Context, ownerID domain.UserID, itemID domain.ItemID) error {
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteItem(ctx, ownerID, itemID)
		if err != nil {
			return fmt.Errorf("could not delete item: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "item not found")
		}

		if _, err := tx.AddJob(ctx, ImageCleanupArgs{
			ImageKey:    deleted.ImageKey,
			maxAttempts: a.options.CleanupMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add cleanup job: %w", err)
		}

		return nil
	}); err != nil {
		return err //nolint: wrapcheck
	}

	return nil
}

// Recommend runs the filter-then-rank flow. The owner's wardrobe is narrowed
// to at most CandidateLimit items matching every constraint, the reference
// item itself never counts against that budget, and the survivors are ranked
// by embedding distance to the reference. At most TopK recommendations are
// returned, closest first.
func (a advisor) Recommend(ctx context.Context,
	ownerID domain.UserID,
	itemID domain.ItemID,
	constraints domain.TagConstraints) ([]Recommendation, error) {
	if err := validateConstraints(constraints); err != nil {
		return nil, err
	}

	reference, err := a.storage.ItemByID(ctx, ownerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("could not get reference item: %w", err)
	}
	if reference == nil {
		return nil, serrors.With(serrors.ErrNotFound, "item not found")
	}

	candidates, err := a.storage.ItemsByOwnerAndTags(ctx, ownerID, constraints, itemID, a.options.CandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get candidate items: %w", err)
	}

	return rank(reference.Embedding, candidates, a.options.TopK)
}

// New creates a new Advisor instance backed by the provided stores and
// collaborators, configured with the given options.
func New(strg storage.Storage,
	images storage.ImageStore,
	tgr tagger.Client,
	emb embedder.Client,
	options Options) Advisor {
	return &advisor{
		options:  options,
		storage:  strg,
		images:   images,
		tagger:   tgr,
		embedder: emb,
	}
}
