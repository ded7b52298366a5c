package service

import (
	"context"
	"io"
)

// BlobStore stores uploaded media and releases it again.
type BlobStore interface {
	// Upload stores data under a name derived from filename and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)

	// Open returns a reader for a stored object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Remove deletes the object behind a URL previously returned by Upload.
	Remove(ctx context.Context, url string) error
}
