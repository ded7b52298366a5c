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

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("brand does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		return nil, productLookupError(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug returns the newest product carrying slug, since slugs may repeat.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("created_at DESC").
		Take(&productM).Error
	if err != nil {
		return nil, productLookupError(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

func productLookupError(err error, failure string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, failure)
}

func (repo *productRepository) List(ctx context.Context, filter query.Filter, page query.Page) ([]*entity.Product, int64, error) {
	rows, total, err := listPage[model.ProductModel](ctx, repo.db, filter, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, total, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(productM).
		Select("*").
		Omit("id", "created_by", "created_at").
		Updates(productM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("brand does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		Barcode:     data.Barcode,
		Packaging:   data.Packaging,
		NetWeight:   data.NetWeight,
		Licensing: entity.Licensing{
			IsBPOM:     data.Licensing.IsBPOM,
			IsHalal:    data.Licensing.IsHalal,
			IsKemenkes: data.Licensing.IsKemenkes,
		},
		IsFeatured: data.IsFeatured,
		IsPublish:  data.IsPublish,
		BrandID:    data.BrandID,
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		Barcode:     data.Barcode,
		Packaging:   data.Packaging,
		NetWeight:   data.NetWeight,
		Licensing: model.LicensingModel{
			IsBPOM:     data.Licensing.IsBPOM,
			IsHalal:    data.Licensing.IsHalal,
			IsKemenkes: data.Licensing.IsKemenkes,
		},
		IsFeatured: data.IsFeatured,
		IsPublish:  data.IsPublish,
		BrandID:    data.BrandID,
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
