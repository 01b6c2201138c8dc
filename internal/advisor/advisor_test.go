package advisor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stylist/internal/advisor"
	"stylist/pkg/domain"
	"stylist/pkg/serrors"
	"stylist/pkg/storage"
	mockstorage "stylist/pkg/storage/mock"
	mockembedder "stylist/pkg/embedder/mock"
	mocktagger "stylist/pkg/tagger/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testImage = []byte{0xFF, 0xD8, 0xFF, 0x01}

type testDeps struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	images   *mockstorage.MockImageStore
	tagger   *mocktagger.MockClient
	embedder *mockembedder.MockClient
}

func newTestAdvisor(t *testing.T) (testDeps, advisor.Advisor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		images:   mockstorage.NewMockImageStore(ctrl),
		tagger:   mocktagger.NewMockClient(ctrl),
		embedder: mockembedder.NewMockClient(ctrl),
	}
	a := advisor.New(deps.storage, deps.images, deps.tagger, deps.embedder, advisor.Options{
		CandidateLimit:     100,
		TopK:               10,
		CleanupMaxAttempts: 3,
	})

	return deps, a
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	deps testDeps,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	deps.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(deps.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestAdvisor_AddItem_Success(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_add")

	deps.tagger.EXPECT().Tag(gomock.Any(), testImage, "image/jpeg").Return(domain.Tags{
		Category: "top",
		Type:     "t-shirt",
		Season:   []string{"summer", "monsoon"},
		Occasion: []string{"casual"},
	}, nil)
	deps.embedder.EXPECT().Embed(gomock.Any(), testImage, "image/jpeg").Return([]float32{1, 2, 3}, nil)
	deps.images.EXPECT().PutImage(gomock.Any(), gomock.Any(), testImage, "image/jpeg").DoAndReturn(
		func(_ context.Context, key string, _ []byte, _ string) error {
			require.True(t, strings.HasPrefix(key, "user_add/"))
			require.True(t, strings.HasSuffix(key, ".jpg"))

			return nil
		},
	)
	deps.storage.EXPECT().InsertItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item domain.ClothingItem) (*domain.ClothingItem, error) {
			require.Equal(t, owner, item.OwnerID)
			require.Equal(t, domain.CategoryTop, item.Category)
			// the hallucinated season is dropped before storage
			require.Equal(t, []string{"summer"}, item.Tags.Season)
			require.Equal(t, []float32{1, 2, 3}, item.Embedding)

			stored := item
			stored.ID = domain.ItemID(uuid.New())
			stored.CreatedAt = time.Now()

			return &stored, nil
		},
	)

	item, err := a.AddItem(context.Background(), owner, testImage, "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, item)
	require.NotEqual(t, uuid.Nil, uuid.UUID(item.ID))
}

func TestAdvisor_AddItem_EmptyImage(t *testing.T) {
	_, a := newTestAdvisor(t)

	_, err := a.AddItem(context.Background(), "user_add", nil, "image/jpeg")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestAdvisor_AddItem_UnsupportedContentType(t *testing.T) {
	_, a := newTestAdvisor(t)

	_, err := a.AddItem(context.Background(), "user_add", testImage, "application/pdf")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestAdvisor_AddItem_UnknownCategoryRejected(t *testing.T) {
	deps, a := newTestAdvisor(t)

	// the embedder and both stores must never be called for a rejected item
	deps.tagger.EXPECT().Tag(gomock.Any(), testImage, "image/png").Return(domain.Tags{
		Category: "spacesuit",
	}, nil)

	_, err := a.AddItem(context.Background(), "user_add", testImage, "image/png")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestAdvisor_AddItem_TaggerFails(t *testing.T) {
	deps, a := newTestAdvisor(t)

	deps.tagger.EXPECT().Tag(gomock.Any(), testImage, "image/jpeg").
		Return(domain.Tags{}, serrors.With(serrors.ErrUpstream, "model overloaded"))

	_, err := a.AddItem(context.Background(), "user_add", testImage, "image/jpeg")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestAdvisor_AddItem_EmbedderFails(t *testing.T) {
	deps, a := newTestAdvisor(t)

	deps.tagger.EXPECT().Tag(gomock.Any(), testImage, "image/jpeg").
		Return(domain.Tags{Category: "top"}, nil)
	deps.embedder.EXPECT().Embed(gomock.Any(), testImage, "image/jpeg").
		Return(nil, serrors.With(serrors.ErrUpstream, "encoder unavailable"))

	// neither the image nor the item may be stored: the controller fails the
	// test on any PutImage or InsertItem call

	_, err := a.AddItem(context.Background(), "user_add", testImage, "image/jpeg")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestAdvisor_AddItem_InsertFailureRemovesImage(t *testing.T) {
	deps, a := newTestAdvisor(t)

	deps.tagger.EXPECT().Tag(gomock.Any(), testImage, "image/jpeg").
		Return(domain.Tags{Category: "top"}, nil)
	deps.embedder.EXPECT().Embed(gomock.Any(), testImage, "image/jpeg").Return([]float32{1}, nil)

	var uploadedKey string
	deps.images.EXPECT().PutImage(gomock.Any(), gomock.Any(), testImage, "image/jpeg").DoAndReturn(
		func(_ context.Context, key string, _ []byte, _ string) error {
			uploadedKey = key

			return nil
		},
	)
	deps.storage.EXPECT().InsertItem(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	deps.images.EXPECT().DeleteImage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) error {
			require.Equal(t, uploadedKey, key)

			return nil
		},
	)

	_, err := a.AddItem(context.Background(), "user_add", testImage, "image/jpeg")
	require.Error(t, err)
}

func TestAdvisor_Items_Success(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_list")
	next := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	deps.storage.EXPECT().ItemsByOwner(gomock.Any(), owner, time.Time{}, uint(20)).Return(storage.OwnerItems{
		Items:      []domain.ClothingItem{{OwnerID: owner}},
		NextCursor: &next,
	}, nil)

	items, cursor, err := a.Items(context.Background(), owner, "", 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, next.Format(time.RFC3339), cursor)
}

func TestAdvisor_Items_InvalidCursor(t *testing.T) {
	_, a := newTestAdvisor(t)

	_, _, err := a.Items(context.Background(), "user_list", "yesterday-ish", 20)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestAdvisor_Delete_Success(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_del")
	itemID := domain.ItemID(uuid.New())

	expectWithTx(t, deps, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteItem(gomock.Any(), owner, itemID).Return(&domain.ClothingItem{
			ID:       itemID,
			OwnerID:  owner,
			ImageKey: "user_del/img.jpg",
		}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args interface{}, _ interface{}) (bool, error) {
				cleanup, ok := args.(advisor.ImageCleanupArgs)
				require.True(t, ok)
				require.Equal(t, "user_del/img.jpg", cleanup.ImageKey)

				return true, nil
			},
		)
	})

	require.NoError(t, a.Delete(context.Background(), owner, itemID))
}

func TestAdvisor_Delete_NotFound(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_del")
	itemID := domain.ItemID(uuid.New())

	expectWithTx(t, deps, func(tx *mockstorage.MockAllStorage) {
		// no cleanup job may be enqueued when nothing was deleted
		tx.EXPECT().DeleteItem(gomock.Any(), owner, itemID).Return(nil, nil)
	})

	err := a.Delete(context.Background(), owner, itemID)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAdvisor_Recommend_RanksByDistance(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_rec")
	refID := domain.ItemID(uuid.New())
	constraints := domain.TagConstraints{"category": "bottom"}

	deps.storage.EXPECT().ItemByID(gomock.Any(), owner, refID).Return(&domain.ClothingItem{
		ID:        refID,
		OwnerID:   owner,
		Embedding: []float32{0, 0},
	}, nil)
	deps.storage.EXPECT().ItemsByOwnerAndTags(gomock.Any(), owner, constraints, refID, uint(100)).
		Return([]domain.ClothingItem{
			{ImageKey: "far", Embedding: []float32{5, 5}},
			{ImageKey: "near", Embedding: []float32{1, 0}},
		}, nil)

	recs, err := a.Recommend(context.Background(), owner, refID, constraints)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "near", recs[0].Item.ImageKey)
	require.InDelta(t, 1.0, recs[0].Score, 1e-9)
	require.Equal(t, "far", recs[1].Item.ImageKey)
	require.InDelta(t, 7.0710678, recs[1].Score, 1e-6)
}

func TestAdvisor_Recommend_ReferenceNotFound(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_rec")
	refID := domain.ItemID(uuid.New())

	deps.storage.EXPECT().ItemByID(gomock.Any(), owner, refID).Return(nil, nil)

	_, err := a.Recommend(context.Background(), owner, refID, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAdvisor_Recommend_InvalidConstraint(t *testing.T) {
	_, a := newTestAdvisor(t)

	// the store must not be queried for an invalid constraint map
	_, err := a.Recommend(context.Background(), "user_rec", domain.ItemID(uuid.New()),
		domain.TagConstraints{"color": "red"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestAdvisor_Recommend_NoCandidates(t *testing.T) {
	deps, a := newTestAdvisor(t)
	owner := domain.UserID("user_rec")
	refID := domain.ItemID(uuid.New())

	deps.storage.EXPECT().ItemByID(gomock.Any(), owner, refID).Return(&domain.ClothingItem{
		ID:        refID,
		Embedding: []float32{0, 0},
	}, nil)
	deps.storage.EXPECT().ItemsByOwnerAndTags(gomock.Any(), owner, gomock.Nil(), refID, uint(100)).
		Return(nil, nil)

	recs, err := a.Recommend(context.Background(), owner, refID, nil)
	require.NoError(t, err)
	require.Empty(t, recs)
}
