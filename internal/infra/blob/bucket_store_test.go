package blob

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) service.BlobStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStore(bucket, "https://cdn.example.com/media/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBucketStore_UploadOpenRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	url, err := store.Upload(ctx, "Logo.PNG", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/media/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "https://cdn.example.com/media/")
	reader, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Remove(ctx, url))

	_, _, err = store.Open(ctx, key)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBucketStore_UploadStoresChecksum(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewBucketStore(bucket, "http://localhost/media", slog.New(slog.NewTextHandler(io.Discard, nil)))

	url, err := store.Upload(ctx, "a.jpg", "image/jpeg", []byte("abc"))
	require.NoError(t, err)

	attrs, err := bucket.Attributes(ctx, strings.TrimPrefix(url, "http://localhost/media/"))
	require.NoError(t, err)
	assert.Equal(t, util.ContentChecksum([]byte("abc")), attrs.Metadata[checksumMetadataKey])
}

func TestBucketStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Remove(ctx, "https://other.example.com/media/x.png")
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	err = store.Remove(ctx, "https://cdn.example.com/media/../secret")
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	err = store.Remove(ctx, "https://cdn.example.com/media/missing.png")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestValidKey(t *testing.T) {
	assert.True(t, validKey("0b7c7f8e-4b7a-4a52-8b9e-6a1d3c2f1e00.png"))
	assert.False(t, validKey(""))
	assert.False(t, validKey(".env"))
	assert.False(t, validKey("a/b.png"))
	assert.False(t, validKey(`a\b.png`))
}
