package impl

import (
	"context"
	"log/slog"
	"strings"

	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/domain/slug"
	logs "catalog/internal/infra/log"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	qrService   service.QRCodeService
	effects     *catalogEffects
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	BlobStore   service.BlobStore
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		qrService:   params.QRService,
		effects:     newCatalogEffects(params.Publisher, params.BlobStore, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

func (srv *productService) Create(ctx context.Context, identity *entity.Identity, input *usecase.ProductInput) (*entity.Product, error) {
	if identity == nil {
		return nil, domainerrors.ErrMissingToken
	}

	product := &entity.Product{CreatedBy: identity.Subject}
	applyProductInput(product, input)

	product.Slug = slug.Derive(product.Name)
	if product.Slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must contain at least one letter or digit")
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).InfoContext(ctx, "Product created", slog.Any("product_id", product.ID), slog.String("slug", product.Slug))
	srv.effects.publish(ctx, constants.ResourceProduct, product.ID, service.CatalogCreated, identity)

	return product, nil
}

func (srv *productService) FindAll(ctx context.Context, params query.Params) (*query.Result[*entity.Product], error) {
	filter, page, err := parseListing(productSchema, params)
	if err != nil {
		return nil, err
	}

	products, total, err := srv.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := query.NewResult(products, total, page)

	return &result, nil
}

func (srv *productService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) FindBySlug(ctx context.Context, productSlug string) (*entity.Product, error) {
	productSlug = strings.TrimSpace(productSlug)
	if productSlug == "" {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err := srv.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return product, nil
}

// Update keeps the stored slug unless the name changed.
func (srv *productService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	previousName := product.Name
	applyProductInput(product, input)

	if product.Name != previousName {
		derived := slug.Derive(product.Name)
		if derived == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must contain at least one letter or digit")
		}

		srv.log(ctx).DebugContext(ctx, "Product renamed, slug re-derived",
			slog.Any("product_id", product.ID),
			slog.String("old_slug", product.Slug),
			slog.String("new_slug", derived),
		)
		product.Slug = derived
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.effects.publish(ctx, constants.ResourceProduct, product.ID, service.CatalogUpdated, identity)

	return product, nil
}

func (srv *productService) Remove(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).InfoContext(ctx, "Product removed", slog.Any("product_id", id))
	srv.effects.releaseMedia(ctx, constants.ResourceProduct, product.Image)
	srv.effects.publish(ctx, constants.ResourceProduct, id, service.CatalogRemoved, identity)

	return product, nil
}

// ShareQR renders a QR code for the product page of an existing product.
func (srv *productService) ShareQR(ctx context.Context, productSlug string) ([]byte, error) {
	product, err := srv.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(product.Slug)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Image = strings.TrimSpace(input.Image)
	product.Barcode = strings.TrimSpace(input.Barcode)
	product.Packaging = strings.TrimSpace(input.Packaging)
	product.NetWeight = strings.TrimSpace(input.NetWeight)
	product.Licensing = input.Licensing
	product.IsFeatured = input.IsFeatured
	product.IsPublish = input.IsPublish
	product.BrandID = input.BrandID
}
