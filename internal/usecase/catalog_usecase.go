package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/query"

	"github.com/google/uuid"
)

// BrandInput is the full set of writable brand fields.
type BrandInput struct {
	Name        string
	Description string
	Icon        string
	IsShow      bool
}

// ProductInput is the full set of writable product fields. The slug is derived from Name.
type ProductInput struct {
	Name        string
	Description string
	Image       string
	Barcode     string
	Packaging   string
	NetWeight   string
	Licensing   entity.Licensing
	IsFeatured  bool
	IsPublish   bool
	BrandID     uuid.UUID
}

// BannerInput is the full set of writable banner fields.
type BannerInput struct {
	Title  string
	Image  string
	IsShow bool
}

// BrandUsecase manages brands. Writes are attributed to identity.
type BrandUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input *BrandInput) (*entity.Brand, error)
	FindAll(ctx context.Context, params query.Params) (*query.Result[*entity.Brand], error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *BrandInput) (*entity.Brand, error)
	// Remove deletes the brand and releases its icon.
	Remove(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Brand, error)
}

// ProductUsecase manages products.
type ProductUsecase interface {
	// Create derives the slug from the name and records identity as the creator.
	Create(ctx context.Context, identity *entity.Identity, input *ProductInput) (*entity.Product, error)
	FindAll(ctx context.Context, params query.Params) (*query.Result[*entity.Product], error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	// Update re-derives the slug only when the name changed.
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	// Remove deletes the product and releases its image.
	Remove(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Product, error)
	// ShareQR renders a PNG QR code linking to the product page.
	ShareQR(ctx context.Context, slug string) ([]byte, error)
}

// BannerUsecase manages banners.
type BannerUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input *BannerInput) (*entity.Banner, error)
	FindAll(ctx context.Context, params query.Params) (*query.Result[*entity.Banner], error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *BannerInput) (*entity.Banner, error)
	// Remove deletes the banner and releases its image.
	Remove(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Banner, error)
}
