package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_MakeSalt(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	salt1, err := h.MakeSalt()
	require.NoError(t, err)
	salt2, err := h.MakeSalt()
	require.NoError(t, err)

	assert.Len(t, salt1, 32, "salt should be 16 bytes hex encoded")
	assert.NotEqual(t, salt1, salt2, "salts should be random")
	assert.NotContains(t, salt1, ".", "salt must not contain the separator")
}

func TestHasher_HashPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	stored, err := h.HashPassword("secret123")
	require.NoError(t, err)

	i := strings.LastIndex(stored, ".")
	require.Greater(t, i, 0, "stored value should contain a separator")
	assert.Len(t, stored[i+1:], 32, "salt part should be 16 bytes hex encoded")
	assert.True(t, strings.HasPrefix(stored, "$2"), "digest part should be a bcrypt hash")
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	stored, err := h.HashPassword("secret123")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, h.Verify(stored, "secret123"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, h.Verify(stored, "secret124"))
	})

	t.Run("empty password", func(t *testing.T) {
		assert.False(t, h.Verify(stored, ""))
	})

	t.Run("malformed stored values", func(t *testing.T) {
		for _, stored := range []string{"", "no-separator", ".onlysalt", "garbage.salt"} {
			assert.False(t, h.Verify(stored, "secret123"), "stored=%q", stored)
		}
	})

	t.Run("different salts produce different digests for same password", func(t *testing.T) {
		other, err := h.HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, stored, other)
		assert.True(t, h.Verify(other, "secret123"))
	})
}
