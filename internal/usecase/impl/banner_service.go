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

// bannerService implements the BannerUsecase interface.
type bannerService struct {
	bannerRepo repository.BannerRepository
	effects    *catalogEffects
	logger     *slog.Logger
}

// BannerServiceParams holds dependencies for BannerService, injected by Fx.
type BannerServiceParams struct {
	fx.In

	BannerRepo repository.BannerRepository
	Publisher  service.EventPublisher
	BlobStore  service.BlobStore
	Logger     *slog.Logger
}

// NewBannerService is the constructor for bannerService.
func NewBannerService(params BannerServiceParams) usecase.BannerUsecase {
	return &bannerService{
		bannerRepo: params.BannerRepo,
		effects:    newCatalogEffects(params.Publisher, params.BlobStore, params.Logger),
		logger:     params.Logger,
	}
}

func (srv *bannerService) Create(ctx context.Context, identity *entity.Identity, input *usecase.BannerInput) (*entity.Banner, error) {
	banner := &entity.Banner{}
	applyBannerInput(banner, input)

	if err := srv.bannerRepo.Create(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to create banner")
	}

	logs.FromContext(ctx, srv.logger).InfoContext(ctx, "Banner created", slog.Any("banner_id", banner.ID))
	srv.effects.publish(ctx, constants.ResourceBanner, banner.ID, service.CatalogCreated, identity)

	return banner, nil
}

func (srv *bannerService) FindAll(ctx context.Context, params query.Params) (*query.Result[*entity.Banner], error) {
	filter, page, err := parseListing(bannerSchema, params)
	if err != nil {
		return nil, err
	}

	banners, total, err := srv.bannerRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	result := query.NewResult(banners, total, page)

	return &result, nil
}

func (srv *bannerService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	banner, err := srv.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find banner")
	}

	return banner, nil
}

func (srv *bannerService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *usecase.BannerInput) (*entity.Banner, error) {
	banner, err := srv.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find banner")
	}

	applyBannerInput(banner, input)

	if err := srv.bannerRepo.Update(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to update banner")
	}

	srv.effects.publish(ctx, constants.ResourceBanner, banner.ID, service.CatalogUpdated, identity)

	return banner, nil
}

func (srv *bannerService) Remove(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Banner, error) {
	banner, err := srv.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find banner")
	}

	if err := srv.bannerRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete banner")
	}

	logs.FromContext(ctx, srv.logger).InfoContext(ctx, "Banner removed", slog.Any("banner_id", id))
	srv.effects.releaseMedia(ctx, constants.ResourceBanner, banner.Image)
	srv.effects.publish(ctx, constants.ResourceBanner, id, service.CatalogRemoved, identity)

	return banner, nil
}

func applyBannerInput(banner *entity.Banner, input *usecase.BannerInput) {
	banner.Title = strings.TrimSpace(input.Title)
	banner.Image = strings.TrimSpace(input.Image)
	banner.IsShow = input.IsShow
}
