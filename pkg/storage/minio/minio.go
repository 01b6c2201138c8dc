// Package minio implements storage.ImageStore on top of a MinIO (or any
// S3-compatible) object store.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options defines the connection parameters for the object store.
type Options struct {
	// Endpoint is the host:port of the object store, without scheme.
	Endpoint string
	// AccessKey is the access key id used for authentication.
	AccessKey string
	// SecretKey is the secret access key used for authentication.
	SecretKey string
	// Bucket is the bucket all images are stored in.
	Bucket string
	// UseSSL enables TLS for the connection.
	UseSSL bool
}

// Store holds item images in a single bucket. It implements
// storage.ImageStore.
type Store struct {
	client *minio.Client
	bucket string
}

// New creates a Store from the given options. It does not touch the network;
// use EnsureBucket to verify connectivity and create the bucket.
func New(options Options) (*Store, error) {
	client, err := minio.New(options.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(options.AccessKey, options.SecretKey, ""),
		Secure: options.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create minio client: %w", err)
	}

	return &Store{
		client: client,
		bucket: options.Bucket,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("could not check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("could not create bucket: %w", err)
		}
	}

	return nil
}

// PutImage uploads image bytes under the given key.
func (s *Store) PutImage(ctx context.Context, key string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("could not put object %s: %w", key, err)
	}

	return nil
}

// GetImage retrieves image bytes by key.
func (s *Store) GetImage(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("could not get object %s: %w", key, err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("could not read object %s: %w", key, err)
	}

	return data, nil
}

// DeleteImage removes an image by key. Deleting a missing key is not an
// error.
func (s *Store) DeleteImage(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("could not remove object %s: %w", key, err)
	}

	return nil
}

// Ping checks connectivity to the object store.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("could not reach object store: %w", err)
	}

	return nil
}
