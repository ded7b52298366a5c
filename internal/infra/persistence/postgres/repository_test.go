package postgres

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"
	"catalog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var accountColumns = []string{
	"id", "full_name", "username", "email", "password_hash", "role",
	"profile_picture", "activation_state", "activation_code", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func accountRow(rows *sqlmock.Rows, id uuid.UUID, state entity.ActivationState, code any) *sqlmock.Rows {
	now := time.Now()

	return rows.AddRow(id.String(), "Jane Doe", "jane", "jane@example.com", "$2a$hash", "MEMBER",
		"", string(state), code, now, now)
}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`INSERT INTO "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))

	code := "abc"
	account := &entity.Account{
		FullName:       "Jane Doe",
		Username:       "jane",
		Email:          "jane@example.com",
		PasswordHash:   "$2a$hash",
		Role:           entity.RoleMember,
		State:          entity.ActivationPending,
		ActivationCode: &code,
	}

	require.NoError(t, repo.Create(context.Background(), account))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.False(t, account.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_accounts_email"})

	err := repo.Create(context.Background(), &entity.Account{Username: "jane", Email: "jane@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestAccountRepository_FindByIdentifier(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE lower\(email\) = lower\(\$1\) OR username = \$2`).
		WillReturnRows(accountRow(sqlmock.NewRows(accountColumns), id, entity.ActivationActive, nil))

	account, err := repo.FindByIdentifier(context.Background(), "Jane@Example.com")

	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, entity.RoleMember, account.Role)
	assert.True(t, account.IsActive())
	assert.Nil(t, account.ActivationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByActivationCodeNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE activation_code = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByActivationCode(context.Background(), "used")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountRepository_FindByIDDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestAccountRepository_TransitionState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE "accounts" SET .*"activation_state"=\$.* WHERE id = \$. AND activation_state = \$. RETURNING \*`).
		WillReturnRows(accountRow(sqlmock.NewRows(accountColumns), id, entity.ActivationActive, nil))

	account, err := repo.TransitionState(context.Background(), id, entity.ActivationPending, repository.StatePatch{
		State: entity.ActivationActive,
	})

	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, entity.ActivationActive, account.State)
	assert.Nil(t, account.ActivationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_TransitionStateMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`UPDATE "accounts" SET`).WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.TransitionState(context.Background(), uuid.New(), entity.ActivationPending, repository.StatePatch{
		State: entity.ActivationActive,
	})

	assert.True(t, errors.Is(err, repository.ErrStateMismatch))
}

func TestAccountRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`UPDATE "accounts" SET .*"full_name"=.* WHERE "id" = \$`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Account{ID: uuid.New(), FullName: "New Name", PasswordHash: "h"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_ListColumnSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	filter := query.Filter{
		Search: &query.Search{
			Term:    "mi_lk",
			Mode:    query.SearchColumns,
			Columns: []string{"name", "description"},
		},
		Conditions: []query.Condition{{Column: "is_show", Value: true}},
		Sort:       query.DefaultSort,
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "brands" WHERE \("name" ILIKE \$1 OR "description" ILIKE \$2\) AND "is_show" = \$3`).
		WithArgs(`%mi\_lk%`, `%mi\_lk%`, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "brands" WHERE .* ORDER BY created_at DESC.* LIMIT .* OFFSET`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon", "is_show", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "Milky", "", "icon.png", true, time.Now(), time.Now()))

	brands, total, err := repo.List(context.Background(), filter, query.Page{Number: 3, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, brands, 1)
	assert.Equal(t, "Milky", brands[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_ListPastLastPage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "brands"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	brands, total, err := repo.List(context.Background(), query.Filter{}, query.Page{Number: 4, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, brands)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepository_ListOversizedPage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBannerRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "banners"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	banners, total, err := repo.List(context.Background(), query.Filter{}, query.Page{Number: 1000000000000000000, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, banners)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_DeleteReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	mock.ExpectExec(`DELETE FROM "brands" WHERE id = \$1`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Delete(context.Background(), uuid.New())

	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestBrandRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	mock.ExpectExec(`DELETE FROM "brands"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
}

func TestProductRepository_ListTextSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	brandID := uuid.New()

	filter := query.Filter{
		Search:     &query.Search{Term: "milk", Mode: query.SearchTextIndex, TextIndex: "search_vector"},
		Conditions: []query.Condition{{Column: "brand_id", Value: brandID}},
		Sort:       query.DefaultSort,
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE "search_vector" @@ plainto_tsquery\('simple', \$1\) AND "brand_id" = \$2`).
		WithArgs("milk", brandID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	products, total, err := repo.List(context.Background(), filter, query.Page{Number: 1, Limit: 10})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindBySlugNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug = \$1 ORDER BY created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindBySlug(context.Background(), "fresh-milk")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateUnknownBrand(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`INSERT INTO "products"`).WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &entity.Product{Name: "Milk", BrandID: uuid.New()})

	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestBannerRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBannerRepository(db)

	mock.ExpectExec(`UPDATE "banners" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Banner{ID: uuid.New(), Title: "Promo"})

	assert.True(t, errors.Is(err, domainerrors.ErrBannerNotFound))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	failure := errors.New("mail failed")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewAccountRepository().Create(context.Background(), &entity.Account{Username: "jane"}); err != nil {
			return err
		}

		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `100\%`, likeEscaper.Replace("100%"))
	assert.Equal(t, `a\_b\\c`, likeEscaper.Replace(`a_b\c`))
}
