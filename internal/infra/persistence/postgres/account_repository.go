package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts the account. The id is generated here when the caller left it empty.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("account is missing required information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find account by id", "id = ?", id)
}

// FindByIdentifier matches the email case-insensitively and the username exactly.
func (repo *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find account by identifier",
		"lower(email) = lower(?) OR username = ?", identifier, identifier)
}

// FindByActivationCode retrieves the pending account holding code.
func (repo *accountRepository) FindByActivationCode(ctx context.Context, code string) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find account by activation code", "activation_code = ?", code)
}

func (repo *accountRepository) findOne(ctx context.Context, failure string, cond string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(cond, args...).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	return toAccountDomain(&accountM), nil
}

// TransitionState is a single UPDATE ... WHERE activation_state = expected RETURNING *.
// Of two concurrent callers at most one sees a row come back.
func (repo *accountRepository) TransitionState(
	ctx context.Context,
	id uuid.UUID,
	expected entity.ActivationState,
	patch repository.StatePatch,
) (*entity.Account, error) {
	var updated []model.AccountModel

	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND activation_state = ?", id, string(expected)).
		Updates(map[string]any{
			"activation_state": string(patch.State),
			"activation_code":  patch.ActivationCode,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition account state")
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, repository.ErrStateMismatch
	}

	return toAccountDomain(&updated[0]), nil
}

// Update writes the profile and credential fields of the account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(accountM).
		Select("full_name", "profile_picture", "password_hash", "updated_at").
		Updates(accountM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		FullName:       data.FullName,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Role:           entity.Role(data.Role),
		ProfilePicture: data.ProfilePicture,
		State:          entity.ActivationState(data.ActivationState),
		ActivationCode: data.ActivationCode,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:              data.ID,
		FullName:        data.FullName,
		Username:        data.Username,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Role:            data.Role.String(),
		ProfilePicture:  data.ProfilePicture,
		ActivationState: string(data.State),
		ActivationCode:  data.ActivationCode,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
