package handler

import (
	"log/slog"
	"net/http"
	"time"

	"catalog/internal/delivery/api/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for account-related handlers
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for registering an account
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required,max=100"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest represents the request body for logging in with an email or a username
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// ActivationRequest represents the request body for activating an account
type ActivationRequest struct {
	Code string `json:"code" validate:"required"`
}

// UpdateProfileRequest represents the request body for updating the caller's profile
type UpdateProfileRequest struct {
	FullName       *string `json:"fullName" validate:"omitempty,min=1,max=100"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,max=2048"`
}

// UpdatePasswordRequest represents the request body for changing the caller's password
type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginResponse is the issued bearer token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "Registration successful, check your email to activate the account", account)
}

// Login handles the login request
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Me returns the account of the authenticated caller
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Me(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Account retrieved successfully", account)
}

// Activation consumes an activation code
func (h *AuthHandler) Activation(c echo.Context) error {
	var req ActivationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Activate(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Account activated successfully", account)
}

// UpdateProfile changes the caller's own profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), identity, &usecase.UpdateProfileInput{
		FullName:       req.FullName,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Profile updated successfully", account)
}

// UpdatePassword replaces the caller's own password
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.UpdatePassword(c.Request().Context(), identity, &usecase.UpdatePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Password updated successfully", account)
}
