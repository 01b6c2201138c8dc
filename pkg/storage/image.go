package storage

import "context"

//go:generate mockgen -package mockstorage -source=image.go -destination=mock/mockimagestore.go *

// ImageStore persists wardrobe item images in an object store, keyed by the
// image key recorded on the item.
type ImageStore interface {
	PutImage(ctx context.Context, key string, data []byte, contentType string) error
	GetImage(ctx context.Context, key string) ([]byte, error)
	DeleteImage(ctx context.Context, key string) error
}
