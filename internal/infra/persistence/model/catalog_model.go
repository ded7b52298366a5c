package model

import (
	"time"

	"github.com/google/uuid"
)

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:text"`
	IsShow      bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// LicensingModel is embedded into ProductModel with the licensing_ column prefix.
type LicensingModel struct {
	IsBPOM     bool `gorm:"column:is_bpom;not null"`
	IsHalal    bool `gorm:"column:is_halal;not null"`
	IsKemenkes bool `gorm:"column:is_kemenkes;not null"`
}

// ProductModel mirrors the 'products' table. The search_vector column is generated by
// the database and deliberately absent here.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(150);not null"`
	Slug        string         `gorm:"type:varchar(200);not null;index"`
	Description string         `gorm:"type:text"`
	Image       string         `gorm:"type:text"`
	Barcode     string         `gorm:"type:varchar(64)"`
	Packaging   string         `gorm:"type:varchar(100)"`
	NetWeight   string         `gorm:"type:varchar(50)"`
	Licensing   LicensingModel `gorm:"embedded;embeddedPrefix:licensing_"`
	IsFeatured  bool           `gorm:"not null"`
	IsPublish   bool           `gorm:"not null"`
	BrandID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BannerModel mirrors the 'banners' table.
type BannerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(150);not null"`
	Image     string    `gorm:"type:text;not null"`
	IsShow    bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}
