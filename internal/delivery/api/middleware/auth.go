package middleware

import (
	"log/slog"
	"strings"

	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware verifies bearer tokens and gates routes by role.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Authenticate verifies the bearer token and stores the caller identity on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		if authHeader == "" {
			return response.AppError(c, domainerrors.ErrMissingToken)
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return response.AppError(c, domainerrors.ErrTokenMalformed)
		}

		identity, err := m.tokenService.Verify(token)
		if err != nil {
			var appErr domainerrors.AppError
			if !errors.As(err, &appErr) {
				appErr = domainerrors.ErrTokenMalformed
			}
			logs.FromContext(c.Request().Context(), m.logger).Debug("Token rejected", slog.String("code", appErr.ErrorCode()))

			return response.AppError(c, appErr)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRoles admits only identities whose role is in roles. There is no hierarchy:
// every admitted role must be listed. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.NewRoleSet(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrMissingToken)
			}

			if !allowed.Contains(identity.Role) {
				logs.FromContext(c.Request().Context(), m.logger).Warn("Role not allowed",
					slog.String("role", identity.Role.String()),
					slog.Any("allowed", allowed.ToStrings()),
					slog.String("path", c.Path()),
				)

				return response.AppError(c, domainerrors.ErrRoleNotAllowed)
			}

			return next(c)
		}
	}
}

// bearerToken extracts the token of a "Bearer <token>" header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
