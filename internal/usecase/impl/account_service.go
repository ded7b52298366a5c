// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileEditors may change their own profile and password.
var profileEditors = entity.NewRoleSet(entity.RoleAdmin, entity.RoleStaff)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	codes        service.ActivationCodeGenerator
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	Codes        service.ActivationCodeGenerator
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		codes:        params.Codes,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// Register creates the PENDING account and mails the activation code in one transaction.
// A mail failure rolls the account back.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	code, err := srv.codes.Generate()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	account := &entity.Account{
		FullName:       strings.TrimSpace(input.FullName),
		Username:       strings.TrimSpace(input.Username),
		Email:          email,
		PasswordHash:   hashedPassword,
		Role:           entity.RoleMember,
		State:          entity.ActivationPending,
		ActivationCode: &code,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAccountRepository().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		return srv.mailer.SendActivationCode(ctx, account.Email, account.FullName, code)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("account_id", account.ID))

	return account, nil
}

// decoy returns a hash made once with the configured cost for logins on unknown identifiers.
func (srv *accountService) decoy(ctx context.Context) string {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash("catalog-login-decoy")
		if err != nil {
			srv.log(ctx).Error("Failed to prepare login decoy hash", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})

	return srv.decoyHash
}

// Login never tells the caller which part of the credentials was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByIdentifier(ctx, strings.TrimSpace(input.Identifier))
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			// Unknown identifiers pay for a compare too, so response time does not reveal them.
			srv.hasher.Check(input.Password, srv.decoy(ctx))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by identifier")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !account.IsActive() {
		srv.log(ctx).Warn("Login attempt on inactive account", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	issued, err := srv.tokenService.Issue(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Account logged in", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// Me returns the caller's account.
func (srv *accountService) Me(ctx context.Context, identity *entity.Identity) (*entity.Account, error) {
	if identity == nil {
		return nil, domainerrors.ErrMissingToken
	}

	account, err := srv.accountRepo.FindByID(ctx, identity.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find current account")
	}

	return account, nil
}

// Activate consumes the code with a conditional update. Of two concurrent calls only one
// can move the account out of PENDING; the other gets a conflict or, once the code is
// gone, not found.
func (srv *accountService) Activate(ctx context.Context, code string) (*entity.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("activation code is required")
	}

	account, err := srv.accountRepo.FindByActivationCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return nil, domainerrors.ErrActivationCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by activation code")
	}

	activated, err := srv.accountRepo.TransitionState(ctx, account.ID, entity.ActivationPending, repository.StatePatch{
		State:          entity.ActivationActive,
		ActivationCode: nil,
	})
	if err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			srv.log(ctx).Warn("Activation lost to a concurrent transition", slog.Any("account_id", account.ID))

			return nil, domainerrors.ErrActivationConflict
		}

		return nil, errors.Wrap(err, "failed to activate account")
	}

	srv.log(ctx).Info("Account activated", slog.Any("account_id", activated.ID))

	return activated, nil
}

// UpdateProfile changes the caller's own full name and profile picture.
func (srv *accountService) UpdateProfile(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	account, err := srv.editableAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		fullName := strings.TrimSpace(*input.FullName)
		if fullName == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("fullName must not be empty")
		}
		account.FullName = fullName
	}
	if input.ProfilePicture != nil {
		account.ProfilePicture = strings.TrimSpace(*input.ProfilePicture)
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return account, nil
}

// UpdatePassword replaces the caller's own password after checking the current one.
func (srv *accountService) UpdatePassword(ctx context.Context, identity *entity.Identity, input *usecase.UpdatePasswordInput) (*entity.Account, error) {
	account, err := srv.editableAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
		return nil, domainerrors.ErrPasswordMismatch
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}
	account.PasswordHash = hashedPassword

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.Any("account_id", account.ID))

	return account, nil
}

// editableAccount loads the caller's account after checking the caller may edit it.
func (srv *accountService) editableAccount(ctx context.Context, identity *entity.Identity) (*entity.Account, error) {
	if identity == nil {
		return nil, domainerrors.ErrMissingToken
	}
	if !profileEditors.Contains(identity.Role) {
		return nil, domainerrors.ErrRoleNotAllowed
	}

	account, err := srv.accountRepo.FindByID(ctx, identity.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}
