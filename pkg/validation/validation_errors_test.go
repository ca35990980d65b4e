package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=employer candidate"`
}

func TestFormatValidationErrorsEnumeratesEveryRule(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(registerForm{Email: "not-an-email", Password: "short", Role: "root"})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	require.Len(t, messages, 3)
	assert.Contains(t, messages[0], "Email")
	assert.Contains(t, messages[1], "at least 8")
	assert.Contains(t, messages[2], "one of")
}

func TestFormatValidationErrorsPassthrough(t *testing.T) {
	messages := FormatValidationErrors(assert.AnError)
	require.Len(t, messages, 1)
	assert.Equal(t, assert.AnError.Error(), messages[0])
}
