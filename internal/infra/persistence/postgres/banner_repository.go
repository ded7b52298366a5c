package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bannerRepository implements repository.BannerRepository using GORM.
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository is the constructor for bannerRepository.
func NewBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &bannerRepository{db: db}
}

func (repo *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	if banner.ID == uuid.Nil {
		banner.ID = uuid.New()
	}
	bannerM := fromBannerDomain(banner)

	if err := repo.db.WithContext(ctx).Create(bannerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create banner")
	}

	banner.CreatedAt = bannerM.CreatedAt
	banner.UpdatedAt = bannerM.UpdatedAt

	return nil
}

func (repo *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var bannerM model.BannerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bannerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBannerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find banner by id")
	}

	return toBannerDomain(&bannerM), nil
}

func (repo *bannerRepository) List(ctx context.Context, filter query.Filter, page query.Page) ([]*entity.Banner, int64, error) {
	rows, total, err := listPage[model.BannerModel](ctx, repo.db, filter, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list banners")
	}

	banners := make([]*entity.Banner, 0, len(rows))
	for i := range rows {
		banners = append(banners, toBannerDomain(&rows[i]))
	}

	return banners, total, nil
}

func (repo *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	result := repo.db.WithContext(ctx).Model(bannerM).Select("*").Omit("id", "created_at").Updates(bannerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update banner")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBannerNotFound
	}

	banner.UpdatedAt = bannerM.UpdatedAt

	return nil
}

func (repo *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BannerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete banner")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBannerNotFound
	}

	return nil
}

func toBannerDomain(data *model.BannerModel) *entity.Banner {
	return &entity.Banner{
		ID:        data.ID,
		Title:     data.Title,
		Image:     data.Image,
		IsShow:    data.IsShow,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBannerDomain(data *entity.Banner) *model.BannerModel {
	return &model.BannerModel{
		ID:        data.ID,
		Title:     data.Title,
		Image:     data.Image,
		IsShow:    data.IsShow,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
