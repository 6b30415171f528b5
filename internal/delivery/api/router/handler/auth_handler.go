// Package handler contains the echo handlers of the JSON API.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"accounts/config"
	"accounts/internal/delivery/api/response"
	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const avatarFormField = "avatar"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	maxAvatarBytes int64
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	var maxAvatarBytes int64
	if params.Config.Avatar != nil {
		maxAvatarBytes = params.Config.Avatar.MaxBytes
	}

	return &AuthHandler{
		authUC:         params.AuthUC,
		maxAvatarBytes: maxAvatarBytes,
		logger:         params.Logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse pairs the account with its session token.
type LoginResponse struct {
	User  *UserView            `json:"user"`
	Token service.SessionToken `json:"token"`
}

// RegisterRequest is the body of POST /auth/register, as JSON or multipart form fields.
type RegisterRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,max=100"`
	Username  string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" form:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,max=32"`
	Password  string `json:"password" form:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email              string `json:"email" validate:"required,email"`
	NewPassword        string `json:"newPassword" validate:"required"`
	ResetPasswordToken string `json:"resetPasswordToken" validate:"required"`
}

// ConfirmEmailRequest carries the token of GET /auth/confirm-email.
type ConfirmEmailRequest struct {
	Token string `query:"token" validate:"required"`
}

// bind decodes and validates req, writing the 400 response itself on failure.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		User:  newUserView(out.User),
		Token: out.Token,
	})
}

// Register handles POST /auth/register. A multipart body may carry an avatar file.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	avatar, err := h.readAvatar(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Avatar:    avatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// readAvatar returns the uploaded avatar, or nil when the request has none.
// It reads at most one byte past the limit so oversized files are still rejected by the store.
func (h *AuthHandler) readAvatar(c echo.Context) ([]byte, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	fh, err := c.FormFile(avatarFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrInvalidAvatar.WithDetails("unreadable upload")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open avatar upload")
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxAvatarBytes > 0 {
		r = io.LimitReader(f, h.maxAvatarBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read avatar upload")
	}

	return data, nil
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	sent, err := h.authUC.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sent)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	done, err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
		Token:       req.ResetPasswordToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, done)
}

// ConfirmEmail handles GET /auth/confirm-email?token=.
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	var req ConfirmEmailRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	confirmed, err := h.authUC.ConfirmEmail(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmed)
}

// ResendConfirmation handles POST /auth/resend-confirmation for the authenticated caller.
func (h *AuthHandler) ResendConfirmation(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	sent, err := h.authUC.ResendConfirmation(c.Request().Context(), p.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	user, err := h.authUC.Me(c.Request().Context(), p.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}
