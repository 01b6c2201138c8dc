// Package tagger defines the abstraction for assigning wardrobe attributes to
// clothing item images through a vision model.
package tagger

import (
	"context"
	"stylist/pkg/domain"
)

// Client is the abstraction for image taggers. Implementations inspect an
// item image and return the attribute set describing it.
//
// Returned tags are untrusted model output: callers must validate them at the
// boundary before storing anything derived from them.
//
//go:generate mockgen -package mocktagger -source=interface.go -destination=mock/mocktagger.go *
type Client interface {
	// Tag derives wardrobe attributes from the given image bytes.
	Tag(ctx context.Context, image []byte, contentType string) (domain.Tags, error)
}
