package kernel_test

import (
	"strings"
	"testing"

	"quotation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create unique valid UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsZero())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	const valid = "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(valid)

		require.NoError(t, err)
		assert.Equal(t, valid, id.String())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should accept upper case and braces", func(t *testing.T) {
		id, err := kernel.UUIDFromString("{" + strings.ToUpper(valid) + "}")

		require.NoError(t, err)
		assert.Equal(t, valid, id.String())
	})
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.True(t, id.IsZero())
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}
