package utils

import (
	"testing"
	"time"

	"gencare/config"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestExtractIDFromToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "u-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := ValidateToken(tokenString)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", id)
}

func TestExtractIDFromTokenMissingSubject(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := ValidateToken(tokenString)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
