package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand groups products under a manufacturer or label.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon"`
	IsShow      bool      `json:"isShow"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
