// Package embedder defines the abstraction for projecting clothing item
// images into the compatibility vector space.
package embedder

import "context"

// Client is the abstraction for embedding services. Implementations map an
// item image to a fixed-length vector; every vector a given service produces
// has the same dimension.
//
//go:generate mockgen -package mockembedder -source=interface.go -destination=mock/mockembedder.go *
type Client interface {
	// Embed computes the embedding vector for the given image bytes.
	Embed(ctx context.Context, image []byte, contentType string) ([]float32, error)
}
