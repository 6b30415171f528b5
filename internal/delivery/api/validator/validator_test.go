package validator_test

import (
	"testing"

	"accounts/internal/delivery/api/validator"
	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := validator.New()

	err := v.Validate(&loginRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"email":    "email",
		"password": "min=8",
	}, validator.FieldErrors(err))
}

func TestValidate_Passes(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&loginRequest{Email: "a@b.co", Password: "long-enough"}))
}

func TestFieldErrors_IgnoresForeignErrors(t *testing.T) {
	assert.Nil(t, validator.FieldErrors(errors.New("boom")))
	assert.Nil(t, validator.FieldErrors(nil))
}
