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

// BrandHandlerParams holds dependencies for BrandHandler, injected by Fx.
type BrandHandlerParams struct {
	fx.In

	BrandUC usecase.BrandUsecase
	Logger  *slog.Logger
}

// BrandHandler holds dependencies for brand handlers
type BrandHandler struct {
	brandUC usecase.BrandUsecase
	logger  *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler
func NewBrandHandler(params BrandHandlerParams) *BrandHandler {
	return &BrandHandler{
		brandUC: params.BrandUC,
		logger:  params.Logger,
	}
}

// BrandRequest represents the request body for creating or replacing a brand
type BrandRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Icon        string `json:"icon" validate:"required"`
	IsShow      *bool  `json:"isShow" validate:"required"`
}

func (req *BrandRequest) toInput() *usecase.BrandInput {
	return &usecase.BrandInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsShow:      *req.IsShow,
	}
}

// Create handles brand creation
func (h *BrandHandler) Create(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.Create(c.Request().Context(), identity, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Brand created successfully", brand)
}

// FindAll lists brands
func (h *BrandHandler) FindAll(c echo.Context) error {
	result, err := h.brandUC.FindAll(c.Request().Context(), queryParams(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, "Brands retrieved successfully", result)
}

// FindOne returns a brand by id
func (h *BrandHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Brand retrieved successfully", brand)
}

// Update replaces a brand
func (h *BrandHandler) Update(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.Update(c.Request().Context(), identity, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Brand updated successfully", brand)
}

// Remove deletes a brand
func (h *BrandHandler) Remove(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.Remove(c.Request().Context(), identity, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Brand removed successfully", brand)
}
