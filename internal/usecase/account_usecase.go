// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in. Identifier is an email or a username.
type LoginInput struct {
	Identifier string
	Password   string
}

// UpdateProfileInput carries the profile fields to change; nil fields are left as they are.
type UpdateProfileInput struct {
	FullName       *string
	ProfilePicture *string
}

// UpdatePasswordInput defines the data required to replace a password.
type UpdatePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase defines the account lifecycle and credential operations.
type AccountUsecase interface {
	// Register creates a PENDING account and mails its activation code.
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)

	// Login issues a token for an ACTIVE account. Every mismatch yields ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Me returns the account of the caller.
	Me(ctx context.Context, identity *entity.Identity) (*entity.Account, error)

	// Activate consumes an activation code and moves its account to ACTIVE.
	Activate(ctx context.Context, code string) (*entity.Account, error)

	// UpdateProfile changes the caller's own profile.
	UpdateProfile(ctx context.Context, identity *entity.Identity, input *UpdateProfileInput) (*entity.Account, error)

	// UpdatePassword replaces the caller's own password after checking the old one.
	UpdatePassword(ctx context.Context, identity *entity.Identity, input *UpdatePasswordInput) (*entity.Account, error)
}
