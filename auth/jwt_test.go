package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	tokenString, err := GenerateToken(42, "bob@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := VerifyToken(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "bob@x.com", claims["email"])
}

func TestVerifyToken_Tampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	tokenString, err := GenerateToken(42, "bob@x.com")
	require.NoError(t, err)

	_, err = VerifyToken(tokenString + "x")
	assert.Error(t, err)
}

func TestInitJWTSecret_Missing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}
