package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"
	"catalog/internal/usecase"
	"catalog/internal/util"

	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxFilesPerUpload bounds UploadMultiple.
const maxFilesPerUpload = 10

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	blobStore     service.BlobStore
	maxUploadSize int64
	logger        *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	BlobStore service.BlobStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMediaService is the constructor for mediaService. It fails on an unparsable media.maxUploadSize.
func NewMediaService(params MediaServiceParams) (usecase.MediaUsecase, error) {
	limit := ""
	if params.Config.Media != nil {
		limit = params.Config.Media.MaxUploadSize
	}

	maxUploadSize, err := bytes.Parse(limit)
	if err != nil || maxUploadSize <= 0 {
		return nil, errors.Errorf("invalid media maxUploadSize: %q", limit)
	}

	return newMediaService(params.BlobStore, maxUploadSize, params.Logger), nil
}

func newMediaService(blobStore service.BlobStore, maxUploadSize int64, logger *slog.Logger) *mediaService {
	return &mediaService{
		blobStore:     blobStore,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (srv *mediaService) UploadSingle(ctx context.Context, file *usecase.MediaFile) (string, error) {
	contentType, err := srv.checkFile(file)
	if err != nil {
		return "", err
	}

	url, err := srv.blobStore.Upload(ctx, file.Filename, contentType, file.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload media")
	}

	return url, nil
}

// UploadMultiple checks every file before storing any. When a store fails midway the files
// already stored are removed again.
func (srv *mediaService) UploadMultiple(ctx context.Context, files []*usecase.MediaFile) ([]string, error) {
	if len(files) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one file is required")
	}
	if len(files) > maxFilesPerUpload {
		return nil, domainerrors.ErrValidationFailed.WithDetails("too many files in one upload")
	}

	contentTypes := make([]string, len(files))
	for i, file := range files {
		contentType, err := srv.checkFile(file)
		if err != nil {
			return nil, err
		}
		contentTypes[i] = contentType
	}

	urls := make([]string, 0, len(files))
	for i, file := range files {
		url, err := srv.blobStore.Upload(ctx, file.Filename, contentTypes[i], file.Data)
		if err != nil {
			srv.rollback(ctx, urls)

			return nil, errors.Wrap(err, "failed to upload media")
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (srv *mediaService) Open(ctx context.Context, key string) (*usecase.MediaObject, error) {
	body, contentType, err := srv.blobStore.Open(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media")
	}

	return &usecase.MediaObject{Body: body, ContentType: contentType}, nil
}

func (srv *mediaService) Remove(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fileUrl is required")
	}

	if err := srv.blobStore.Remove(ctx, url); err != nil {
		return errors.Wrap(err, "failed to remove media")
	}

	return nil
}

// checkFile enforces the size limit and sniffs the content type from the data itself.
func (srv *mediaService) checkFile(file *usecase.MediaFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	size := int64(len(file.Data))
	if size > srv.maxUploadSize {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			file.Filename + " is " + util.FormatBytes(size) + ", the limit is " + util.FormatBytes(srv.maxUploadSize))
	}

	contentType := http.DetectContentType(file.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrValidationFailed.WithDetails(file.Filename + " is not an image")
	}

	return contentType, nil
}

func (srv *mediaService) rollback(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := srv.blobStore.Remove(ctx, url); err != nil {
			logs.FromContext(ctx, srv.logger).WarnContext(ctx, "Failed to remove media after aborted upload",
				slog.String("url", url),
				slog.Any("error", err),
			)
		}
	}
}
