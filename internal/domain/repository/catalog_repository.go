package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/query"

	"github.com/google/uuid"
)

// BrandRepository defines the operations for brand persistence.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	// List returns the brands matching filter on the given page and the total match count.
	List(ctx context.Context, filter query.Filter, page query.Page) ([]*entity.Brand, int64, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindBySlug returns the most recently created product carrying slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, filter query.Filter, page query.Page) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BannerRepository defines the operations for banner persistence.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	List(ctx context.Context, filter query.Filter, page query.Page) ([]*entity.Banner, int64, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
