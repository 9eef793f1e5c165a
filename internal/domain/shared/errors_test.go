package shared

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainError(t *testing.T) {
	err := NewDomainError("INVALID_QUANTITY", "Quantity must be a non-negative integer")

	assert.Equal(t, "INVALID_QUANTITY", err.Code)
	assert.Equal(t, "Quantity must be a non-negative integer", err.Error())
}

func TestDomainErrorMatchesByCode(t *testing.T) {
	t.Run("distinct values with the same code match", func(t *testing.T) {
		err := NewDomainError(CodeNotFound, "no bracelet with id B001")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("matching survives fmt.Errorf wrapping", func(t *testing.T) {
		err := fmt.Errorf("remove bracelet: %w", NewDomainError(CodeAlreadyExists, "duplicate id"))
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})
}

func TestNewStorageError(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewStorageError("insert", cause)

	require.True(t, errors.Is(err, ErrStorageFailure))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "insert")
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		conflict   bool
		storage    bool
	}{
		{
			name:       "field validation error",
			err:        NewDomainError("INVALID_PRICE", "Price must be a non-negative number"),
			validation: true,
		},
		{
			name:     "not found",
			err:      NewDomainError(CodeNotFound, "no such record"),
			notFound: true,
		},
		{
			name:     "conflict",
			err:      ErrAlreadyExists,
			conflict: true,
		},
		{
			name:    "storage fault",
			err:     NewStorageError("fetch all", errors.New("connection refused")),
			storage: true,
		},
		{
			name: "plain error matches nothing",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
			assert.Equal(t, tt.storage, IsStorageFault(tt.err))
		})
	}
}
