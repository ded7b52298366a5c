package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BannerHandlerParams holds dependencies for BannerHandler, injected by Fx.
type BannerHandlerParams struct {
	fx.In

	BannerUC usecase.BannerUsecase
	Logger   *slog.Logger
}

// BannerHandler holds dependencies for banner handlers
type BannerHandler struct {
	bannerUC usecase.BannerUsecase
	logger   *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler
func NewBannerHandler(params BannerHandlerParams) *BannerHandler {
	return &BannerHandler{
		bannerUC: params.BannerUC,
		logger:   params.Logger,
	}
}

// BannerRequest represents the request body for creating or replacing a banner
type BannerRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Image  string `json:"image" validate:"required"`
	IsShow *bool  `json:"isShow" validate:"required"`
}

func (req *BannerRequest) toInput() *usecase.BannerInput {
	return &usecase.BannerInput{
		Title:  req.Title,
		Image:  req.Image,
		IsShow: *req.IsShow,
	}
}

// Create handles banner creation
func (h *BannerHandler) Create(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	banner, err := h.bannerUC.Create(c.Request().Context(), identity, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Banner created successfully", banner)
}

// FindAll lists banners, most recent first
func (h *BannerHandler) FindAll(c echo.Context) error {
	result, err := h.bannerUC.FindAll(c.Request().Context(), queryParams(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, "Banners retrieved successfully", result)
}

// FindOne returns a banner by id
func (h *BannerHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrBannerNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	banner, err := h.bannerUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Banner retrieved successfully", banner)
}

// Update replaces a banner
func (h *BannerHandler) Update(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrBannerNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	banner, err := h.bannerUC.Update(c.Request().Context(), identity, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Banner updated successfully", banner)
}

// Remove deletes a banner
func (h *BannerHandler) Remove(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrBannerNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	banner, err := h.bannerUC.Remove(c.Request().Context(), identity, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Banner removed successfully", banner)
}
