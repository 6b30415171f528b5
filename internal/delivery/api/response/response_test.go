package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/internal/delivery/api/response"
	"accounts/internal/delivery/api/validator"
	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_WrapsDataWithRequestID(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, response.Success(c, http.StatusOK, true))

	assert.JSONEq(t, `{"data":true,"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError_MapsCatalogue(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domainerrors.ErrDuplicateAccount, http.StatusConflict, "DUPLICATE_ACCOUNT"},
		{domainerrors.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{domainerrors.ErrResetTokenInvalid, http.StatusUnauthorized, "RESET_TOKEN_INVALID"},
		{domainerrors.ErrConfirmationExpired, http.StatusBadRequest, "CONFIRMATION_EXPIRED"},
		{domainerrors.ErrConfirmationMalformed, http.StatusBadRequest, "CONFIRMATION_MALFORMED"},
		{domainerrors.ErrAlreadyConfirmed, http.StatusBadRequest, "ALREADY_CONFIRMED"},
		{domainerrors.ErrTooSoon, http.StatusTooManyRequests, "TOO_SOON"},
		{domainerrors.ErrNotRegistered, http.StatusBadRequest, "NOT_REGISTERED"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, response.HandleAppError(c, errors.Wrap(tt.err, "flow")))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestAppError_DetailsOnlyFor4xx(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, response.AppError(c, domainerrors.ErrInvalidAvatar.WithDetails("too large")))
	assert.Equal(t, "too large", decodeError(t, rec).Error.Details)

	c, rec = newContext()
	require.NoError(t, response.AppError(c, domainerrors.ErrNotificationFailure.WithDetails("smtp: 421")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, decodeError(t, rec).Error.Details)
}

func TestHandleAppError_PassesThroughServerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown", errors.New("boom")},
		{"notification", domainerrors.ErrNotificationFailure},
		{"database", domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert user")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := response.HandleAppError(c, tt.err)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestValidationError_ListsFields(t *testing.T) {
	type body struct {
		Email string `json:"email" validate:"required,email"`
	}
	c, rec := newContext()

	verr := validator.New().Validate(&body{})
	require.NoError(t, response.ValidationError(c, verr))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", got.Error.Code)
	assert.Equal(t, map[string]any{"email": "required"}, got.Error.Details)
}
