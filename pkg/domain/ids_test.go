package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "platerra/pkg/domain-errors"
)

func TestParseUserID(t *testing.T) {
	t.Run("valid uuid", func(t *testing.T) {
		id, err := ParseUserID("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ParseUserID("not-a-uuid")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("nil uuid parses but reports IsNil", func(t *testing.T) {
		id, err := ParseUserID(uuid.Nil.String())
		require.NoError(t, err)
		assert.True(t, id.IsNil())
	})
}

func TestNewVehicleID(t *testing.T) {
	a := NewVehicleID()
	b := NewVehicleID()
	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)
}
