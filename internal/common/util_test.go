package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret-password")
	WipeByteArray(b)
	for i, v := range b {
		assert.Zero(t, v, "byte %d not wiped", i)
	}
}

func TestWipeByteArray_Nil(t *testing.T) {
	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestValidationError_Unwrap(t *testing.T) {
	err := NewValidationError("title must be 5-100 characters")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "title must be 5-100 characters", err.Error())
}
