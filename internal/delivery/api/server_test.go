package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/delivery/api"
	"accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router"
	"accounts/internal/delivery/api/router/handler"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	mockSvc "accounts/internal/mocks/service"
	mockUsecase "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo   *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
	userUC *mockUsecase.MockUserUsecase
	tokens *mockSvc.MockTokenIssuer
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	return newAPIFixtureWithLogger(t, slog.New(slog.DiscardHandler))
}

func newAPIFixtureWithLogger(t *testing.T, logger *slog.Logger) *apiFixture {
	t.Helper()

	cfg := &config.Config{Avatar: &config.AvatarConfig{MaxBytes: 8}}
	cfg.HTTP.MaxRequestBodySize = "1M"

	f := &apiFixture{
		authUC: mockUsecase.NewMockAuthUsecase(t),
		userUC: mockUsecase.NewMockUserUsecase(t),
		tokens: mockSvc.NewMockTokenIssuer(t),
	}

	f.echo = api.NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Config: cfg, Logger: logger}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			Tokens: f.tokens,
			Logger: logger,
		}),
	})

	return f
}

func (f *apiFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f *apiFixture) signedIn(userID uuid.UUID, role entity.Role) string {
	f.tokens.EXPECT().VerifySession("session").
		Return(&service.Claims{UserID: userID, Role: role, Type: service.TokenTypeAccess}, nil)

	return "Bearer session"
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func sampleUser() *entity.User {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return &entity.User{
		ID:             uuid.Must(uuid.NewV7()),
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Username:       "ada",
		Email:          "ada@example.com",
		Role:           entity.RoleUser,
		PasswordHash:   "$2a$10$secret",
		ResetTokenHash: "reset-digest",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()
	f.authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "pw"}).
		Return(&usecase.LoginOutput{User: user, Token: service.SessionToken{AccessToken: "jwt", ExpiresIn: 3600}}, nil)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"pw"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"accessToken":"jwt"`)
	assert.Contains(t, body, `"expiresIn":3600`)
	assert.Contains(t, body, `"username":"ada"`)
	assert.NotContains(t, body, "secret")
	assert.NotContains(t, body, "reset-digest")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"nope"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestLogin_ValidationFailure(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"email": "email", "password": "required"}, env.Error.Details)
}

func TestLogin_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

const registerJSON = `{"firstName":"Ada","lastName":"Lovelace","username":"ada","email":"ada@example.com","phone":"+44","password":"Passw0rd!"}`

func TestRegister_JSON(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Phone:     "+44",
		Password:  "Passw0rd!",
	}).Return(sampleUser(), nil)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/register", registerJSON))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isEmailConfirmed":false`)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domainerrors.ErrDuplicateAccount, http.StatusConflict, "DUPLICATE_ACCOUNT"},
		{domainerrors.ErrNotificationFailure, http.StatusInternalServerError, "NOTIFICATION_FAILURE"},
		{domainerrors.ErrPasswordStrength, http.StatusBadRequest, "PASSWORD_STRENGTH"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f := newAPIFixture(t)
			f.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := f.do(jsonRequest(http.MethodPost, "/auth/register", registerJSON))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}

func multipartRegister(t *testing.T, avatar []byte) *http.Request {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"username":  "ada",
		"email":     "ada@example.com",
		"password":  "Passw0rd!",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	if avatar != nil {
		part, err := w.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = part.Write(avatar)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestRegister_MultipartAvatar(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
		return in.Username == "ada" && string(in.Avatar) == "png"
	})).Return(sampleUser(), nil)

	rec := f.do(multipartRegister(t, []byte("png")))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegister_MultipartWithoutAvatar(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
		return in.Email == "ada@example.com" && in.Avatar == nil
	})).Return(sampleUser(), nil)

	rec := f.do(multipartRegister(t, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegister_OversizedAvatarIsCappedBeforeStore(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
		// Limit is 8 bytes; one extra byte lets the store see the overflow.
		return len(in.Avatar) == 9
	})).Return(nil, domainerrors.ErrInvalidAvatar.WithDetails("avatar exceeds 8 bytes"))

	rec := f.do(multipartRegister(t, bytes.Repeat([]byte("x"), 64)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_AVATAR", env.Error.Code)
	assert.Equal(t, "avatar exceeds 8 bytes", env.Error.Details)
}

func TestForgotPassword(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").Return(true, nil)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/forgot-password", `{"email":"ghost@example.com"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", string(decode(t, rec).Data))
}

func TestResetPassword(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{
		Email:       "ada@example.com",
		NewPassword: "N3w-password",
		Token:       "abc",
	}).Return(false, domainerrors.ErrResetTokenInvalid)

	rec := f.do(jsonRequest(http.MethodPost, "/auth/reset-password",
		`{"email":"ada@example.com","newPassword":"N3w-password","resetPasswordToken":"abc"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "RESET_TOKEN_INVALID", decode(t, rec).Error.Code)
}

func TestConfirmEmail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "confirmed", status: http.StatusOK},
		{name: "expired", err: domainerrors.ErrConfirmationExpired, status: http.StatusBadRequest, code: "CONFIRMATION_EXPIRED"},
		{name: "malformed", err: domainerrors.ErrConfirmationMalformed, status: http.StatusBadRequest, code: "CONFIRMATION_MALFORMED"},
		{name: "already", err: domainerrors.ErrAlreadyConfirmed, status: http.StatusBadRequest, code: "ALREADY_CONFIRMED"},
		{name: "unknown user", err: domainerrors.ErrUserNotFound, status: http.StatusNotFound, code: "USER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.authUC.EXPECT().ConfirmEmail(mock.Anything, "tok").Return(tt.err == nil, tt.err)

			rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/confirm-email?token=tok", nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decode(t, rec).Error.Code)
			}
		})
	}
}

func TestConfirmEmail_MissingToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/confirm-email", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResendConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "sent", status: http.StatusOK},
		{name: "too soon", err: domainerrors.ErrTooSoon, status: http.StatusTooManyRequests, code: "TOO_SOON"},
		{name: "already confirmed", err: domainerrors.ErrAlreadyConfirmed, status: http.StatusBadRequest, code: "ALREADY_CONFIRMED"},
		{name: "not registered", err: domainerrors.ErrNotRegistered, status: http.StatusBadRequest, code: "NOT_REGISTERED"},
		{name: "mail down", err: domainerrors.ErrNotificationFailure, status: http.StatusInternalServerError, code: "NOTIFICATION_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			userID := uuid.Must(uuid.NewV7())
			auth := f.signedIn(userID, entity.RoleUser)
			f.authUC.EXPECT().ResendConfirmation(mock.Anything, userID).Return(tt.err == nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/auth/resend-confirmation", nil)
			req.Header.Set(echo.HeaderAuthorization, auth)
			rec := f.do(req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decode(t, rec).Error.Code)
			}
		})
	}
}

func TestMe(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()
	auth := f.signedIn(user.ID, entity.RoleUser)
	f.authUC.EXPECT().Me(mock.Anything, user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, auth)
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view handler.UserView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, "ada@example.com", view.Email)
}

func TestMe_RequiresSession(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
}

func TestGetUser(t *testing.T) {
	f := newAPIFixture(t)
	user := sampleUser()
	auth := f.signedIn(uuid.Must(uuid.NewV7()), entity.RoleAdmin)
	f.userUC.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/"+user.ID.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, auth)
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_RoleGuard(t *testing.T) {
	f := newAPIFixture(t)
	auth := f.signedIn(uuid.Must(uuid.NewV7()), entity.Role("GUEST"))

	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
	req.Header.Set(echo.HeaderAuthorization, auth)
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
}

func TestGetUser_BadID(t *testing.T) {
	f := newAPIFixture(t)
	auth := f.signedIn(uuid.Must(uuid.NewV7()), entity.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	req.Header.Set(echo.HeaderAuthorization, auth)
	rec := f.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	auth := f.signedIn(uuid.Must(uuid.NewV7()), entity.RoleUser)
	id := uuid.Must(uuid.NewV7())
	f.userUC.EXPECT().GetUser(mock.Anything, id).Return(nil, domainerrors.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, auth)
	rec := f.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_StoreFailureIsLogged(t *testing.T) {
	logs := &bytes.Buffer{}
	f := newAPIFixtureWithLogger(t, slog.New(slog.NewJSONHandler(logs, nil)))
	auth := f.signedIn(uuid.Must(uuid.NewV7()), entity.RoleAdmin)
	id := uuid.Must(uuid.NewV7())
	f.userUC.EXPECT().GetUser(mock.Anything, id).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset by peer"), "find user"))

	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, auth)
	rec := f.do(req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "DATABASE_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Contains(t, logs.String(), "Request failed")
	assert.Contains(t, logs.String(), "connection reset by peer")
}
