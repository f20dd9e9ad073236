package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateValidate(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)

	token, err := m.Generate("u1", "john.doe@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "john.doe@example.com", claims.Email)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", 15*time.Minute).Generate("u1", "a@b.com")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", 15*time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	token, err := NewJWTManager("secret", -time.Minute).Generate("u1", "a@b.com")
	require.NoError(t, err)

	_, err = NewJWTManager("secret", -time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute)

	_, err := m.Validate("not-a-token")
	assert.Error(t, err)
}
