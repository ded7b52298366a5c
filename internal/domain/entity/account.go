// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivationState tracks whether an account has proven control of its email.
type ActivationState string

const (
	// ActivationPending is the state of every freshly registered account.
	ActivationPending ActivationState = "PENDING"
	// ActivationActive is terminal; there is no transition back to pending.
	ActivationActive ActivationState = "ACTIVE"
)

// Account is a registered identity. It can log in with either its email or its username.
type Account struct {
	ID             uuid.UUID       `json:"id"`
	FullName       string          `json:"fullName"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	Role           Role            `json:"role"`
	ProfilePicture string          `json:"profilePicture"`
	State          ActivationState `json:"activationState"`
	ActivationCode *string         `json:"-"` // Set iff State is ActivationPending.
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsActive reports whether the account finished activation.
func (a *Account) IsActive() bool {
	return a.State == ActivationActive
}

// Identity is the verified caller of a request, produced by the token service.
type Identity struct {
	Subject uuid.UUID
	Role    Role
}
