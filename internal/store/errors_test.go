package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/manufacturer-store/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: store.ErrNotFound, expected: true},
		{name: "ErrManufacturerNotFound", err: store.ErrManufacturerNotFound, expected: true},
		{
			name:     "wrapped in StoreError",
			err:      store.NewStoreError("manufacturer", "update", "id was not found or deleted", store.ErrManufacturerNotFound),
			expected: true,
		},
		{name: "ErrDuplicate", err: store.ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, store.IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsDuplicateError(store.ErrDuplicate))
	assert.True(t, store.IsDuplicateError(fmt.Errorf("insert: %w", store.ErrDuplicate)))
	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
	assert.False(t, store.IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := store.NewStoreError("manufacturer", "get", "can't get manufacturer by id: 1", cause)

		assert.Equal(t,
			"get operation on manufacturer failed: can't get manufacturer by id: 1: connection refused",
			err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()

		err := store.NewStoreError("manufacturer", "delete", "nothing to do", nil)
		assert.Equal(t, "delete operation on manufacturer failed: nothing to do", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("AsStoreError", func(t *testing.T) {
		t.Parallel()

		storeErr := store.NewStoreError("manufacturer", "create", "can't insert manufacturer", errors.New("boom"))
		wrapped := fmt.Errorf("caller context: %w", storeErr)

		got, ok := store.AsStoreError(wrapped)
		require.True(t, ok)
		assert.Same(t, storeErr, got)
		assert.Equal(t, "create", got.Operation)

		_, ok = store.AsStoreError(errors.New("plain"))
		assert.False(t, ok)
	})
}
