package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(42, "Alice", "a@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateRefreshToken(42)
	assert.NoError(t, err)

	claims, err := m.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Empty(t, claims.Name)
	assert.Empty(t, claims.Email)
}

func TestExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(42, "Alice", "a@example.com")
	assert.NoError(t, err)

	claims, err := m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 15*time.Minute, 24*time.Hour)
	verifier := NewManager("secret-b", 15*time.Minute, 24*time.Hour)

	token, err := issuer.GenerateAccessToken(42, "Alice", "a@example.com")
	assert.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestGarbageToken(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	claims, err := m.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
