package blob

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const checksumMetadataKey = "sha256"

// Params holds dependencies for the bucket store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the bucket named by media.bucketUrl and closes it on shutdown.
func New(params Params) (service.BlobStore, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucketUrl is required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("media publicBaseUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Logger.Info("Media bucket opened", slog.String("public_base_url", cfg.PublicBaseURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing media bucket")

			return bucket.Close()
		},
	})

	return NewBucketStore(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// NewBucketStore serves objects of an already opened bucket under publicBaseURL.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.BlobStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *bucketStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := util.ObjectName(filename)

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{checksumMetadataKey: util.ContentChecksum(data)},
	})
	if err != nil {
		return "", domainerrors.ErrMediaStorageFailed.WrapMessage(err.Error())
	}

	s.logger.DebugContext(ctx, "Media object stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return s.publicBaseURL + "/" + key, nil
}

func (s *bucketStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !validKey(key) {
		return nil, "", domainerrors.ErrNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound
		}

		return nil, "", domainerrors.ErrMediaStorageFailed.WrapMessage(err.Error())
	}

	return reader, reader.ContentType(), nil
}

func (s *bucketStore) Remove(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || !validKey(key) {
		return domainerrors.ErrValidationFailed.WithDetails("url is not served by this media store")
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return domainerrors.ErrNotFound
		}

		return domainerrors.ErrMediaStorageFailed.WrapMessage(err.Error())
	}

	return nil
}

// validKey accepts the flat object names produced by util.ObjectName.
func validKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, `/\`) && !strings.HasPrefix(key, ".")
}
