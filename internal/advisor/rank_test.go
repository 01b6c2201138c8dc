package advisor

import (
	"testing"

	"stylist/pkg/domain"
	"stylist/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func item(name string, embedding ...float32) domain.ClothingItem {
	return domain.ClothingItem{
		ImageKey:  name,
		Embedding: embedding,
	}
}

func TestRank_OrdersByDistance(t *testing.T) {
	ranked, err := rank([]float32{0, 0}, []domain.ClothingItem{
		item("far", 5, 5),
		item("near", 1, 0),
	}, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	require.Equal(t, "near", ranked[0].Item.ImageKey)
	require.InDelta(t, 1.0, ranked[0].Score, 1e-9)

	require.Equal(t, "far", ranked[1].Item.ImageKey)
	require.InDelta(t, 7.0710678, ranked[1].Score, 1e-6)
}

func TestRank_TruncatesAfterSorting(t *testing.T) {
	// the closest candidate appears last; a naive truncate-then-sort would drop it
	ranked, err := rank([]float32{0, 0}, []domain.ClothingItem{
		item("c", 3, 0),
		item("b", 2, 0),
		item("a", 1, 0),
	}, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	require.Equal(t, "a", ranked[0].Item.ImageKey)
	require.Equal(t, "b", ranked[1].Item.ImageKey)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	ranked, err := rank([]float32{0, 0}, []domain.ClothingItem{
		item("first", 0, 1),
		item("second", 1, 0),
	}, 10)
	require.NoError(t, err)
	require.Equal(t, "first", ranked[0].Item.ImageKey)
	require.Equal(t, "second", ranked[1].Item.ImageKey)
}

func TestRank_EmptyCandidates(t *testing.T) {
	ranked, err := rank([]float32{0, 0}, nil, 10)
	require.NoError(t, err)
	require.Empty(t, ranked)
}

func TestRank_DimensionMismatch(t *testing.T) {
	_, err := rank([]float32{0, 0}, []domain.ClothingItem{
		item("bad", 1, 2, 3),
	}, 10)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestRank_IdenticalEmbeddings(t *testing.T) {
	ranked, err := rank([]float32{1, 2, 3}, []domain.ClothingItem{
		item("twin", 1, 2, 3),
	}, 10)
	require.NoError(t, err)
	require.Zero(t, ranked[0].Score)
}
