package response_test

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagholimess/mess-service/internal/http/response"
)

func TestOK(t *testing.T) {
	resp := response.OK()
	assert.True(t, resp.Success)
}

func TestError(t *testing.T) {
	resp := response.Error("Max pause limit reached")
	assert.Equal(t, "Max pause limit reached", resp.Error)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Phone string `validate:"required"`
		Pax   int    `validate:"required,gt=0"`
	}

	err := validator.New().Struct(request{})
	require.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	resp := response.ValidationError(validationErrs)
	assert.Contains(t, resp.Error, "field Phone is a required field")
	assert.Contains(t, resp.Error, "field Pax is a required field")
}

func TestValidationError_GreaterThan(t *testing.T) {
	type request struct {
		Pax int `validate:"gt=0"`
	}

	err := validator.New().Struct(request{Pax: -1})
	require.Error(t, err)

	resp := response.ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "field Pax must be greater than 0", resp.Error)
}
