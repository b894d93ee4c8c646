package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	// bcrypt 自带盐，相同密码每次哈希结果不同
	assert.NotEqual(t, first, second)
}

func TestNewTokenID(t *testing.T) {
	assert.NotEqual(t, NewTokenID(), NewTokenID())
	assert.Len(t, NewShortID(), 16)
}
