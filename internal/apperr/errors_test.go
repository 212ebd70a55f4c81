package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidation("surah must be between 1 and 114", "ayah must be a positive integer")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "validation failed: surah must be between 1 and 114; ayah must be a positive integer", err.Error())
	assert.Len(t, err.Violations, 2)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("verse", "surah %d, ayah %d", 114, 10)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "verse not found: surah 114, ayah 10", err.Error())
}

func TestNotFoundErrorWithoutDetail(t *testing.T) {
	err := &NotFoundError{Resource: "surah"}
	assert.Equal(t, "surah not found", err.Error())
}

func TestMatchersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NewNotFound("juz", "juz %d", 5))
	assert.True(t, IsNotFound(wrapped))

	var nf *NotFoundError
	assert.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, "juz", nf.Resource)
}

func TestPlainErrorsMatchNeither(t *testing.T) {
	err := errors.New("connection refused")
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}
