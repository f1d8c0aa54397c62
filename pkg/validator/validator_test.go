package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name   string  `validate:"required"`
	Gender string  `validate:"required,oneof=male female others"`
	Age    int     `validate:"required,gt=0,lt=120"`
	Height float64 `validate:"required,gt=0,lte=3"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	t.Run("accepts a valid struct", func(t *testing.T) {
		err := cv.Validate(&record{Name: "Ana", Gender: "female", Age: 34, Height: 1.75})
		assert.NoError(t, err)
	})

	t.Run("rejects an invalid struct", func(t *testing.T) {
		err := cv.Validate(&record{Gender: "unknown", Age: 150, Height: 1.75})
		assert.Error(t, err)
	})
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	t.Run("reports every violated field", func(t *testing.T) {
		err := cv.Validate(&record{Gender: "unknown", Age: 150})
		require.Error(t, err)

		errors := cv.FormatValidationErrors(err)
		assert.Len(t, errors, 4)
		assert.Equal(t, "Name is required", errors["Name"])
		assert.Equal(t, "Gender must be one of: male female others", errors["Gender"])
		assert.Equal(t, "Age must be less than 120", errors["Age"])
		assert.Equal(t, "Height is required", errors["Height"])
	})

	t.Run("non-validator errors yield an empty map", func(t *testing.T) {
		errors := cv.FormatValidationErrors(assert.AnError)
		assert.Empty(t, errors)
	})
}
