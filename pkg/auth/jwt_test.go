package auth_test

import (
	"testing"
	"time"

	"github.com/andrevlb/sushi-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.Generate("ana@example.com", auth.RoleUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, auth.RoleUser, claims.Role)
	assert.Equal(t, auth.Issuer, claims.Issuer)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenManager("secret", time.Hour).Generate("ana@example.com", auth.RoleUser)
	require.NoError(t, err)

	_, err = auth.NewTokenManager("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := auth.NewTokenManager("secret", -time.Minute)

	token, _, err := tm.Generate("ana@example.com", auth.RoleAdmin)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	_, err := auth.NewTokenManager("secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hash)
	assert.True(t, auth.CheckPassword(hash, "secret"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}
