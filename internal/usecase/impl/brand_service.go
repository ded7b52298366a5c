package impl

import (
	"context"
	"log/slog"
	"strings"

	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/query"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// brandService implements the BrandUsecase interface.
type brandService struct {
	brandRepo repository.BrandRepository
	effects   *catalogEffects
	logger    *slog.Logger
}

// BrandServiceParams holds dependencies for BrandService, injected by Fx.
type BrandServiceParams struct {
	fx.In

	BrandRepo repository.BrandRepository
	Publisher service.EventPublisher
	BlobStore service.BlobStore
	Logger    *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(params BrandServiceParams) usecase.BrandUsecase {
	return &brandService{
		brandRepo: params.BrandRepo,
		effects:   newCatalogEffects(params.Publisher, params.BlobStore, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *brandService) Create(ctx context.Context, identity *entity.Identity, input *usecase.BrandInput) (*entity.Brand, error) {
	brand := &entity.Brand{}
	applyBrandInput(brand, input)

	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	logs.FromContext(ctx, srv.logger).InfoContext(ctx, "Brand created", slog.Any("brand_id", brand.ID))
	srv.effects.publish(ctx, constants.ResourceBrand, brand.ID, service.CatalogCreated, identity)

	return brand, nil
}

func (srv *brandService) FindAll(ctx context.Context, params query.Params) (*query.Result[*entity.Brand], error) {
	filter, page, err := parseListing(brandSchema, params)
	if err != nil {
		return nil, err
	}

	brands, total, err := srv.brandRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	result := query.NewResult(brands, total, page)

	return &result, nil
}

func (srv *brandService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand")
	}

	return brand, nil
}

func (srv *brandService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *usecase.BrandInput) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand")
	}

	applyBrandInput(brand, input)

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to update brand")
	}

	srv.effects.publish(ctx, constants.ResourceBrand, brand.ID, service.CatalogUpdated, identity)

	return brand, nil
}

func (srv *brandService) Remove(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand")
	}

	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete brand")
	}

	logs.FromContext(ctx, srv.logger).InfoContext(ctx, "Brand removed", slog.Any("brand_id", id))
	srv.effects.releaseMedia(ctx, constants.ResourceBrand, brand.Icon)
	srv.effects.publish(ctx, constants.ResourceBrand, id, service.CatalogRemoved, identity)

	return brand, nil
}

func applyBrandInput(brand *entity.Brand, input *usecase.BrandInput) {
	brand.Name = strings.TrimSpace(input.Name)
	brand.Description = strings.TrimSpace(input.Description)
	brand.Icon = strings.TrimSpace(input.Icon)
	brand.IsShow = input.IsShow
}
