package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// LicensingRequest lists the approvals a product carries
type LicensingRequest struct {
	IsBPOM     bool `json:"isBPOM"`
	IsHalal    bool `json:"isHalal"`
	IsKemenkes bool `json:"isKemenkes"`
}

// ProductRequest represents the request body for creating or replacing a product.
// The slug is never accepted from clients.
type ProductRequest struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description" validate:"required"`
	Image       string            `json:"image" validate:"required"`
	Barcode     string            `json:"barcode" validate:"required,max=64"`
	Packaging   string            `json:"packaging" validate:"required,max=100"`
	NetWeight   string            `json:"netWeight" validate:"required,max=50"`
	Licensing   *LicensingRequest `json:"licensing" validate:"required"`
	IsFeatured  *bool             `json:"isFeatured" validate:"required"`
	IsPublish   bool              `json:"isPublish"`
	Brand       string            `json:"brand" validate:"required,uuid"`
}

func (req *ProductRequest) toInput() (*usecase.ProductInput, error) {
	brandID, err := uuid.Parse(req.Brand)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("brand: must be a UUID")
	}

	return &usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Barcode:     req.Barcode,
		Packaging:   req.Packaging,
		NetWeight:   req.NetWeight,
		Licensing: entity.Licensing{
			IsBPOM:     req.Licensing.IsBPOM,
			IsHalal:    req.Licensing.IsHalal,
			IsKemenkes: req.Licensing.IsKemenkes,
		},
		IsFeatured: *req.IsFeatured,
		IsPublish:  req.IsPublish,
		BrandID:    brandID,
	}, nil
}

// Create handles product creation; the caller is recorded as the creator
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Product created successfully", product)
}

// FindAll lists products filtered by search, brand, isPublish and isFeatured
func (h *ProductHandler) FindAll(c echo.Context) error {
	result, err := h.productUC.FindAll(c.Request().Context(), queryParams(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, "Products retrieved successfully", result)
}

// FindOne returns a product by id
func (h *ProductHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// FindBySlug returns the newest product with the given slug
func (h *ProductHandler) FindBySlug(c echo.Context) error {
	product, err := h.productUC.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// ShareQR renders a PNG QR code pointing at the product page
func (h *ProductHandler) ShareQR(c echo.Context) error {
	png, err := h.productUC.ShareQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Update replaces a product
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), identity, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Product updated successfully", product)
}

// Remove deletes a product
func (h *ProductHandler) Remove(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Remove(c.Request().Context(), identity, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Product removed successfully", product)
}
