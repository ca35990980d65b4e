package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWTer("secret", "jobportal", time.Hour)

	token, err := j.Issue("user1", "c@x.com", "candidate")
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.Subject)
	assert.Equal(t, "c@x.com", claims.Email)
	assert.Equal(t, "candidate", claims.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	j := NewJWTer("secret", "jobportal", time.Hour)
	token, err := j.Issue("user1", "c@x.com", "candidate")
	require.NoError(t, err)

	other := NewJWTer("different", "jobportal", time.Hour)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	// Negative TTL plus the parse leeway still puts expiry in the past
	j := NewJWTer("secret", "jobportal", -2*time.Minute)
	token, err := j.Issue("user1", "c@x.com", "candidate")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestJWTWrongIssuer(t *testing.T) {
	j := NewJWTer("secret", "someone-else", time.Hour)
	token, err := j.Issue("user1", "c@x.com", "candidate")
	require.NoError(t, err)

	ours := NewJWTer("secret", "jobportal", time.Hour)
	_, err = ours.Parse(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
