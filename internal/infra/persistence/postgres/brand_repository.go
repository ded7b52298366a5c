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

// brandRepository implements repository.BrandRepository using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

func (repo *brandRepository) List(ctx context.Context, filter query.Filter, page query.Page) ([]*entity.Brand, int64, error) {
	rows, total, err := listPage[model.BrandModel](ctx, repo.db, filter, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(rows))
	for i := range rows {
		brands = append(brands, toBrandDomain(&rows[i]))
	}

	return brands, total, nil
}

func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	result := repo.db.WithContext(ctx).Model(brandM).Select("*").Omit("id", "created_at").Updates(brandM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBrandNotFound
	}

	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// Delete removes the brand. Brands still referenced by products are kept and reported as a conflict.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BrandModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("brand still has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBrandNotFound
	}

	return nil
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		IsShow:      data.IsShow,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	return &model.BrandModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		IsShow:      data.IsShow,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
