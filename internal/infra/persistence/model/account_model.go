// Package model holds the GORM persistence models. They mirror the tables created by
// the embedded migrations and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName        string    `gorm:"type:varchar(100);not null"`
	Username        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(20);not null"`
	ProfilePicture  string    `gorm:"type:text"`
	ActivationState string    `gorm:"type:varchar(20);not null;index"`
	ActivationCode  *string   `gorm:"type:varchar(128);uniqueIndex"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
