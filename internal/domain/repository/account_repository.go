// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStateMismatch is returned by a conditional update when the stored state no longer
// matches the expected one.
var ErrStateMismatch = errors.New("account state does not match the expected state")

// StatePatch is the set of fields changed together with an activation state transition.
type StatePatch struct {
	State          entity.ActivationState
	ActivationCode *string
}

// AccountRepository defines the operations for account persistence.
type AccountRepository interface {
	// Create persists a new account. A taken username or email yields ErrAccountAlreadyExists.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIdentifier retrieves an account whose email or username equals identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)

	// FindByActivationCode retrieves the account currently holding code.
	FindByActivationCode(ctx context.Context, code string) (*entity.Account, error)

	// TransitionState applies patch only if the account is still in expected state,
	// as a single conditional write. It returns ErrStateMismatch when nothing matched.
	TransitionState(ctx context.Context, id uuid.UUID, expected entity.ActivationState, patch StatePatch) (*entity.Account, error)

	// Update modifies the profile and credential fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error
}
