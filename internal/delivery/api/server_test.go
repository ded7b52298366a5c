package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog/config"
	apimiddleware "catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/response"
	"catalog/internal/delivery/api/router"
	"catalog/internal/delivery/api/router/handler"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"
	"catalog/internal/domain/service"
	"catalog/internal/infra/auth"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo      *echo.Echo
	tokens    service.TokenService
	accountUC *mockUsecase.MockAccountUsecase
	brandUC   *mockUsecase.MockBrandUsecase
	productUC *mockUsecase.MockProductUsecase
	bannerUC  *mockUsecase.MockBannerUsecase
	mediaUC   *mockUsecase.MockMediaUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTServiceWithClock("test-secret", time.Hour, time.Now)
	require.NoError(t, err)

	f := &apiFixture{
		tokens:    tokens,
		accountUC: mockUsecase.NewMockAccountUsecase(t),
		brandUC:   mockUsecase.NewMockBrandUsecase(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
		bannerUC:  mockUsecase.NewMockBannerUsecase(t),
		mediaUC:   mockUsecase.NewMockMediaUsecase(t),
	}

	f.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: f.accountUC, Logger: logger}),
		BrandHandler:   handler.NewBrandHandler(handler.BrandHandlerParams{BrandUC: f.brandUC, Logger: logger}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.productUC, Logger: logger}),
		BannerHandler:  handler.NewBannerHandler(handler.BannerHandlerParams{BannerUC: f.bannerUC, Logger: logger}),
		MediaHandler:   handler.NewMediaHandler(handler.MediaHandlerParams{MediaUC: f.mediaUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokens, Logger: logger}),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixture) bearer(t *testing.T, role entity.Role) (string, uuid.UUID) {
	t.Helper()

	account := &entity.Account{ID: uuid.New(), Role: role}
	issued, err := f.tokens.Issue(account)
	require.NoError(t, err)

	return "Bearer " + issued.Token, account.ID
}

func (f *apiFixture) do(method, path, authorization string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func validBrandBody() map[string]any {
	return map[string]any{"name": "Acme", "icon": "http://cdn/icon.png", "isShow": true}
}

func TestServer_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_CatalogWriteGates(t *testing.T) {
	f := newAPIFixture(t)
	staff, _ := f.bearer(t, entity.RoleStaff)
	member, _ := f.bearer(t, entity.RoleMember)

	tests := []struct {
		name          string
		method        string
		path          string
		authorization string
		wantStatus    int
	}{
		{name: "brand create without token", method: http.MethodPost, path: "/brand", wantStatus: http.StatusUnauthorized},
		{name: "brand create as staff", method: http.MethodPost, path: "/brand", authorization: staff, wantStatus: http.StatusForbidden},
		{name: "product update as member", method: http.MethodPut, path: "/product/" + uuid.NewString(), authorization: member, wantStatus: http.StatusForbidden},
		{name: "banner delete as staff", method: http.MethodDelete, path: "/banners/" + uuid.NewString(), authorization: staff, wantStatus: http.StatusForbidden},
		{name: "media upload as member", method: http.MethodPost, path: "/media/upload-single", authorization: member, wantStatus: http.StatusForbidden},
		{name: "profile update as member", method: http.MethodPut, path: "/auth/update-profile", authorization: member, wantStatus: http.StatusForbidden},
		{name: "me without token", method: http.MethodGet, path: "/auth/me", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.method, tt.path, tt.authorization, validBrandBody())

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := errorBody(t, rec)
			assert.False(t, body.Success)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestServer_BrandCreateAsAdmin(t *testing.T) {
	f := newAPIFixture(t)
	admin, subject := f.bearer(t, entity.RoleAdmin)
	created := &entity.Brand{ID: uuid.New(), Name: "Acme", Icon: "http://cdn/icon.png", IsShow: true}

	f.brandUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(identity *entity.Identity) bool {
			return identity.Subject == subject && identity.Role == entity.RoleAdmin
		}), &usecase.BrandInput{Name: "Acme", Icon: "http://cdn/icon.png", IsShow: true}).
		Return(created, nil)

	rec := f.do(http.MethodPost, "/brand", admin, validBrandBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Success bool          `json:"success"`
		Data    *entity.Brand `json:"data"`
		Meta    struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, created.ID, body.Data.ID)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body.Meta.RequestID)
}

func TestServer_BrandCreateValidation(t *testing.T) {
	f := newAPIFixture(t)
	admin, _ := f.bearer(t, entity.RoleAdmin)

	rec := f.do(http.MethodPost, "/brand", admin, map[string]any{"icon": "http://cdn/icon.png"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, domainerrors.KindValidation, body.Kind)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "name: is required; isShow: is required", body.Error.Details)
}

func TestServer_PublicListing(t *testing.T) {
	f := newAPIFixture(t)
	product := &entity.Product{ID: uuid.New(), Name: "Teh Botol", Slug: "teh-botol"}

	f.productUC.EXPECT().
		FindAll(mock.Anything, query.Params{"search": "teh", "page": "2", "limit": "1"}).
		Return(&query.Result[*entity.Product]{Items: []*entity.Product{product}, Total: 3, TotalPages: 3, Current: 2}, nil)

	rec := f.do(http.MethodGet, "/product?search=teh&page=2&limit=1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []*entity.Product `json:"data"`
		Meta response.PageMeta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "teh-botol", body.Data[0].Slug)
	assert.Equal(t, int64(3), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
	assert.Equal(t, 2, body.Meta.Current)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestServer_InvalidQueryIsValidationError(t *testing.T) {
	f := newAPIFixture(t)

	f.brandUC.EXPECT().
		FindAll(mock.Anything, query.Params{"limit": "-1"}).
		Return(nil, domainerrors.ErrInvalidQuery.WithDetails("limit must be a positive integer"))

	rec := f.do(http.MethodGet, "/brand?limit=-1", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", errorBody(t, rec).Error.Code)
}

func TestServer_ProductLookups(t *testing.T) {
	f := newAPIFixture(t)
	product := &entity.Product{ID: uuid.New(), Name: "Teh Botol", Slug: "teh-botol"}

	t.Run("malformed id is not found", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/product/not-a-uuid", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", errorBody(t, rec).Error.Code)
	})

	t.Run("by slug", func(t *testing.T) {
		f.productUC.EXPECT().FindBySlug(mock.Anything, "teh-botol").Return(product, nil).Once()

		rec := f.do(http.MethodGet, "/product/teh-botol/slug", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), product.ID.String())
	})

	t.Run("share qr", func(t *testing.T) {
		png := []byte("\x89PNG\r\n\x1a\nqr")
		f.productUC.EXPECT().ShareQR(mock.Anything, "teh-botol").Return(png, nil).Once()

		rec := f.do(http.MethodGet, "/product/teh-botol/qr", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})
}

func TestServer_RegisterAndLogin(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("confirm password mismatch", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/auth/register", "", map[string]any{
			"fullName": "Jane Doe", "username": "jane", "email": "jane@example.com",
			"password": "Secret123", "confirmPassword": "Secret124",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "confirmPassword: must match password", errorBody(t, rec).Error.Details)
	})

	t.Run("register", func(t *testing.T) {
		account := &entity.Account{ID: uuid.New(), Username: "jane", State: entity.ActivationPending}
		f.accountUC.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{
				FullName: "Jane Doe", Username: "jane", Email: "jane@example.com", Password: "Secret123",
			}).
			Return(account, nil).Once()

		rec := f.do(http.MethodPost, "/auth/register", "", map[string]any{
			"fullName": "Jane Doe", "username": "jane", "email": "jane@example.com",
			"password": "Secret123", "confirmPassword": "Secret123",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"activationState":"PENDING"`)
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("login failure is uniform", func(t *testing.T) {
		f.accountUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Identifier: "jane", Password: "wrong"}).
			Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := f.do(http.MethodPost, "/auth/login", "", map[string]any{"identifier": "jane", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorBody(t, rec).Error.Code)
	})

	t.Run("login", func(t *testing.T) {
		expiresAt := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
		f.accountUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Identifier: "jane@example.com", Password: "Secret123"}).
			Return(&usecase.LoginOutput{Token: "signed", ExpiresAt: expiresAt}, nil).Once()

		rec := f.do(http.MethodPost, "/auth/login", "", map[string]any{"identifier": "jane@example.com", "password": "Secret123"})

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data handler.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "signed", body.Data.Token)
		assert.True(t, expiresAt.Equal(body.Data.ExpiresAt))
	})
}

func TestServer_UpdateProfileActsOnCaller(t *testing.T) {
	f := newAPIFixture(t)
	staff, subject := f.bearer(t, entity.RoleStaff)
	fullName := "Jane Q. Doe"

	f.accountUC.EXPECT().
		UpdateProfile(mock.Anything, &entity.Identity{Subject: subject, Role: entity.RoleStaff}, &usecase.UpdateProfileInput{FullName: &fullName}).
		Return(&entity.Account{ID: subject, FullName: fullName}, nil)

	rec := f.do(http.MethodPut, "/auth/update-profile", staff, map[string]any{"fullName": fullName})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fullName)
}

func TestServer_MediaUploadSingle(t *testing.T) {
	f := newAPIFixture(t)
	staff, _ := f.bearer(t, entity.RoleStaff)
	data := []byte("\x89PNG\r\n\x1a\n0000")

	var payload bytes.Buffer
	writer := multipart.NewWriter(&payload)
	part, err := writer.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	f.mediaUC.EXPECT().
		UploadSingle(mock.Anything, &usecase.MediaFile{Filename: "logo.png", Data: data}).
		Return("http://cdn/media/files/abc.png", nil)

	req := httptest.NewRequest(http.MethodPost, "/media/upload-single", &payload)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, staff)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"http://cdn/media/files/abc.png"`)
}

func TestServer_MediaUploadSingleWithoutFile(t *testing.T) {
	f := newAPIFixture(t)
	admin, _ := f.bearer(t, entity.RoleAdmin)

	rec := f.do(http.MethodPost, "/media/upload-single", admin, map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file: is required", errorBody(t, rec).Error.Details)
}

func TestServer_MediaServeAndRemove(t *testing.T) {
	f := newAPIFixture(t)
	admin, _ := f.bearer(t, entity.RoleAdmin)

	f.mediaUC.EXPECT().
		Open(mock.Anything, "abc.png").
		Return(&usecase.MediaObject{Body: io.NopCloser(strings.NewReader("image-bytes")), ContentType: "image/png"}, nil)
	f.mediaUC.EXPECT().Remove(mock.Anything, "http://cdn/media/files/abc.png").Return(nil)

	served := f.do(http.MethodGet, "/media/files/abc.png", "", nil)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "image/png", served.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "image-bytes", served.Body.String())

	removed := f.do(http.MethodDelete, "/media/remove", admin, map[string]any{"fileUrl": "http://cdn/media/files/abc.png"})
	assert.Equal(t, http.StatusOK, removed.Code)
}
