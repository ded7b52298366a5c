package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authFixture struct {
	echo   *echo.Echo
	tokens service.TokenService
	now    time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	tokens, err := auth.NewJWTServiceWithClock("test-secret", time.Hour, func() time.Time { return f.now })
	require.NoError(t, err)
	f.tokens = tokens

	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, Logger: newDiscardLogger()})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	whoami := func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		fromCtx, ok := deliverycontext.GetIdentityFromContext(c.Request().Context())
		if !ok || fromCtx.Subject != identity.Subject {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, identity.Subject.String())
	}
	e.GET("/me", whoami, m.Authenticate)
	e.GET("/admin", whoami, m.Authenticate, m.RequireRoles(entity.RoleAdmin))
	e.GET("/editors", whoami, m.Authenticate, m.RequireRoles(entity.RoleAdmin, entity.RoleStaff))
	e.GET("/unauthenticated-gate", whoami, m.RequireRoles(entity.RoleAdmin))

	f.echo = e

	return f
}

func (f *authFixture) token(t *testing.T, role entity.Role) (string, uuid.UUID) {
	t.Helper()

	account := &entity.Account{ID: uuid.New(), Role: role}
	issued, err := f.tokens.Issue(account)
	require.NoError(t, err)

	return issued.Token, account.ID
}

func (f *authFixture) do(path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	f := newAuthFixture(t)
	token, subject := f.token(t, entity.RoleMember)

	rec := f.do("/me", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject.String(), rec.Body.String())
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)
	token, _ := f.token(t, entity.RoleMember)

	rec := f.do("/me", "bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_Rejections(t *testing.T) {
	f := newAuthFixture(t)
	expired, _ := f.token(t, entity.RoleAdmin)
	f.now = f.now.Add(2 * time.Hour)

	tests := []struct {
		name          string
		authorization string
		wantCode      string
	}{
		{name: "missing header", authorization: "", wantCode: "MISSING_TOKEN"},
		{name: "basic scheme", authorization: "Basic dXNlcjpwYXNz", wantCode: "TOKEN_MALFORMED"},
		{name: "empty bearer", authorization: "Bearer ", wantCode: "TOKEN_MALFORMED"},
		{name: "garbage token", authorization: "Bearer not.a.jwt", wantCode: "TOKEN_MALFORMED"},
		{name: "expired token", authorization: "Bearer " + expired, wantCode: "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do("/me", tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, domainerrors.KindUnauthenticated, body.Kind)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestRequireRoles_FlatRoleSets(t *testing.T) {
	f := newAuthFixture(t)

	tests := []struct {
		name     string
		path     string
		role     entity.Role
		wantCode int
	}{
		{name: "admin on admin route", path: "/admin", role: entity.RoleAdmin, wantCode: http.StatusOK},
		{name: "staff on admin route", path: "/admin", role: entity.RoleStaff, wantCode: http.StatusForbidden},
		{name: "member on admin route", path: "/admin", role: entity.RoleMember, wantCode: http.StatusForbidden},
		{name: "admin on editor route", path: "/editors", role: entity.RoleAdmin, wantCode: http.StatusOK},
		{name: "staff on editor route", path: "/editors", role: entity.RoleStaff, wantCode: http.StatusOK},
		{name: "member on editor route", path: "/editors", role: entity.RoleMember, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _ := f.token(t, tt.role)

			rec := f.do(tt.path, "Bearer "+token)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusForbidden {
				body := decodeError(t, rec)
				assert.Equal(t, domainerrors.KindForbidden, body.Kind)
				assert.Equal(t, "ROLE_NOT_ALLOWED", body.Error.Code)
			}
		})
	}
}

func TestRequireRoles_WithoutIdentity(t *testing.T) {
	f := newAuthFixture(t)

	rec := f.do("/unauthenticated-gate", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
