// file: utils/jwt_test.go
package utils

import (
	"QRHunt/models"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken(42, "starlight", models.RoleTeam)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), claims.ID)
	assert.Equal(t, "starlight", claims.Username)
	assert.Equal(t, models.RoleTeam, claims.Role)

	// 有效期 24 小时
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestParseToken_Expired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := generateToken(1, "old", models.RoleTeam, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.Error(t, err)
	// 过期必须能和其他解析失败区分开
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseToken_WrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	token, err := GenerateToken(7, "drift", models.RoleAdmin)
	require.NoError(t, err)

	SetJWTSecret("secret-two")
	_, err = ParseToken(token)
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseToken_Garbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}
