package middleware_test

import (
	"testing"

	"staffmis_backend/middleware"
	"staffmis_backend/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	old := middleware.SecretKey
	middleware.SecretKey = "test-secret"
	t.Cleanup(func() { middleware.SecretKey = old })

	token, err := middleware.GenerateJWT(42, model.RoleSubAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := middleware.VerifyJWT(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 42, claims["user_id"])
	assert.Equal(t, model.RoleSubAdmin, claims["role"])
}

func TestVerifyJWTRejectsOtherKey(t *testing.T) {
	old := middleware.SecretKey
	t.Cleanup(func() { middleware.SecretKey = old })

	middleware.SecretKey = "first-key"
	token, err := middleware.GenerateJWT(7, model.RoleStaff)
	require.NoError(t, err)

	middleware.SecretKey = "second-key"
	parsed, err := middleware.VerifyJWT(token)
	assert.Error(t, err)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}

func TestTokenBlacklist(t *testing.T) {
	old := middleware.SecretKey
	middleware.SecretKey = "test-secret"
	t.Cleanup(func() { middleware.SecretKey = old })

	token, err := middleware.GenerateJWT(1, model.RoleStaff)
	require.NoError(t, err)

	assert.False(t, middleware.IsTokenBlacklisted(token))
	middleware.BlacklistToken(token)
	assert.True(t, middleware.IsTokenBlacklisted(token))
}
