package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Slug is derived from Name and is not guaranteed unique.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Barcode     string    `json:"barcode"`
	Packaging   string    `json:"packaging"`
	NetWeight   string    `json:"netWeight"`
	Licensing   Licensing `json:"licensing"`
	IsFeatured  bool      `json:"isFeatured"`
	IsPublish   bool      `json:"isPublish"`
	BrandID     uuid.UUID `json:"brand"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Licensing lists the regulatory approvals a product carries.
type Licensing struct {
	IsBPOM     bool `json:"isBPOM"`
	IsHalal    bool `json:"isHalal"`
	IsKemenkes bool `json:"isKemenkes"`
}
