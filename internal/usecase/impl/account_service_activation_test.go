package impl

import (
	"context"
	"sync"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAccountRepository keeps accounts in memory. TransitionState is a compare-and-swap
// under the lock, like the conditional UPDATE of the postgres repository.
type memAccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]entity.Account
}

func newMemAccountRepository(accounts ...entity.Account) *memAccountRepository {
	repo := &memAccountRepository{accounts: make(map[uuid.UUID]entity.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}

	return repo
}

func (r *memAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID] = *account

	return nil
}

func (r *memAccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domainerrors.ErrAccountNotFound
	}

	return &a, nil
}

func (r *memAccountRepository) FindByIdentifier(_ context.Context, identifier string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Email == identifier || a.Username == identifier {
			return &a, nil
		}
	}

	return nil, domainerrors.ErrAccountNotFound
}

func (r *memAccountRepository) FindByActivationCode(_ context.Context, code string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.ActivationCode != nil && *a.ActivationCode == code {
			return &a, nil
		}
	}

	return nil, domainerrors.ErrAccountNotFound
}

func (r *memAccountRepository) TransitionState(
	_ context.Context,
	id uuid.UUID,
	expected entity.ActivationState,
	patch repository.StatePatch,
) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok || a.State != expected {
		return nil, repository.ErrStateMismatch
	}
	a.State = patch.State
	a.ActivationCode = patch.ActivationCode
	r.accounts[id] = a

	return &a, nil
}

func (r *memAccountRepository) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return domainerrors.ErrAccountNotFound
	}
	r.accounts[account.ID] = *account

	return nil
}

func newPendingAccount(code string) entity.Account {
	return entity.Account{
		ID:             uuid.New(),
		Email:          "jane@example.com",
		Username:       "jane",
		PasswordHash:   "hash",
		Role:           entity.RoleMember,
		State:          entity.ActivationPending,
		ActivationCode: &code,
	}
}

func newActivationService(repo repository.AccountRepository) *accountService {
	return &accountService{accountRepo: repo, logger: newDiscardLogger()}
}

func TestAccountService_Activate_IsOneShot(t *testing.T) {
	pending := newPendingAccount("one-shot")
	repo := newMemAccountRepository(pending)
	svc := newActivationService(repo)

	activated, err := svc.Activate(context.Background(), "one-shot")
	require.NoError(t, err)
	assert.Equal(t, entity.ActivationActive, activated.State)

	stored, err := repo.FindByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ActivationCode)

	_, err = svc.Activate(context.Background(), "one-shot")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestAccountService_Activate_ConcurrentCallsTransitionOnce(t *testing.T) {
	const callers = 8

	for range 20 {
		pending := newPendingAccount("race")
		svc := newActivationService(newMemAccountRepository(pending))

		start := make(chan struct{})
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, errs[i] = svc.Activate(context.Background(), "race")
			}()
		}
		close(start)
		wg.Wait()

		successes := 0
		for _, err := range errs {
			if err == nil {
				successes++

				continue
			}
			kind := domainerrors.KindOf(err)
			assert.Contains(t, []domainerrors.Kind{domainerrors.KindNotFound, domainerrors.KindConflict}, kind)
		}
		assert.Equal(t, 1, successes)
	}
}
