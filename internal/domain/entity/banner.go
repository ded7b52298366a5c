package entity

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a promotional image shown on the storefront.
type Banner struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	IsShow    bool      `json:"isShow"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
