package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", 3600)

	token, err := m.Generate("user-1", "business")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "business", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", 3600).Generate("user-1", "regular")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 3600).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := NewTokenManager("test-secret", -1).Generate("user-1", "regular")
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", -1).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret", 3600).Verify("not-a-token")
	assert.Error(t, err)
}
