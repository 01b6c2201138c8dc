package advisor

import (
	"math"
	"sort"
	"stylist/pkg/domain"
	"stylist/pkg/serrors"
)

// rank scores every candidate by Euclidean distance to the reference
// embedding and returns at most topK of them, closest first. Ties keep the
// candidates' input order, so results are deterministic for a given candidate
// list. The truncation happens after the full sort: a distant item never
// displaces a closer one just because it appeared earlier.
func rank(reference []float32, candidates []domain.ClothingItem, topK uint) ([]Recommendation, error) {
	if len(candidates) == 0 {
		return []Recommendation{}, nil
	}

	out := make([]Recommendation, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := distance(reference, candidate.Embedding)
		if err != nil {
			return nil, err
		}

		out = append(out, Recommendation{Item: candidate, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })

	if uint(len(out)) > topK {
		out = out[:topK]
	}

	return out, nil
}

// distance computes the L2 distance between two embeddings. Vectors of
// different dimensions cannot be compared and indicate a mixed-model store.
func distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, serrors.With(serrors.ErrInvalidInput,
			"embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
