package usecase

import (
	"context"
	"io"
)

// MediaFile is one uploaded file read into memory.
type MediaFile struct {
	Filename string
	Data     []byte
}

// MediaObject is a stored file served from the media store.
type MediaObject struct {
	Body        io.ReadCloser
	ContentType string
}

// MediaUsecase uploads, serves and removes catalog images.
type MediaUsecase interface {
	// UploadSingle stores one image and returns its public URL.
	UploadSingle(ctx context.Context, file *MediaFile) (string, error)

	// UploadMultiple stores every image or none; URLs keep the input order.
	UploadMultiple(ctx context.Context, files []*MediaFile) ([]string, error)

	// Open returns a stored object by key.
	Open(ctx context.Context, key string) (*MediaObject, error)

	// Remove deletes the object behind url.
	Remove(ctx context.Context, url string) error
}
