package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"catalog/internal/delivery/api/response"
	domainerrors "catalog/internal/domain/errors"
	logs "catalog/internal/infra/log"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler holds dependencies for media handlers
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// RemoveMediaRequest represents the request body for removing a stored file
type RemoveMediaRequest struct {
	FileURL string `json:"fileUrl" validate:"required"`
}

// UploadSingleResponse is the public URL of a stored file
type UploadSingleResponse struct {
	URL string `json:"url"`
}

// UploadMultipleResponse lists the public URLs of stored files in upload order
type UploadMultipleResponse struct {
	URLs []string `json:"urls"`
}

// UploadSingle stores the multipart field "file"
func (h *MediaHandler) UploadSingle(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("file: is required"))
	}

	file, err := readUpload(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}

	url, err := h.mediaUC.UploadSingle(c.Request().Context(), file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "File uploaded successfully", UploadSingleResponse{URL: url})
}

// UploadMultiple stores every file of the multipart field "files"
func (h *MediaHandler) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("files: is required"))
	}

	fileHeaders := form.File["files"]
	files := make([]*usecase.MediaFile, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		file, err := readUpload(fileHeader)
		if err != nil {
			return errors.WithStack(err)
		}
		files = append(files, file)
	}

	urls, err := h.mediaUC.UploadMultiple(c.Request().Context(), files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Files uploaded successfully", UploadMultipleResponse{URLs: urls})
}

// Serve streams a stored file by key
func (h *MediaHandler) Serve(c echo.Context) error {
	object, err := h.mediaUC.Open(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if closeErr := object.Body.Close(); closeErr != nil {
			logs.FromContext(c.Request().Context(), h.logger).Warn("Failed to close media reader", slog.Any("error", closeErr))
		}
	}()

	contentType := object.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, contentType, object.Body)
}

// Remove deletes the file behind fileUrl
func (h *MediaHandler) Remove(c echo.Context) error {
	var req RemoveMediaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.mediaUC.Remove(c.Request().Context(), req.FileURL); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "File removed successfully", nil)
}

func readUpload(fileHeader *multipart.FileHeader) (*usecase.MediaFile, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded file")
	}

	return &usecase.MediaFile{Filename: fileHeader.Filename, Data: data}, nil
}
