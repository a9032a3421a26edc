package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret")
	userID := uuid.NewString()

	token, err := m.GenerateAccessToken(userID, "reader@example.com", "librarian")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "librarian", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	m := NewManager("secret")

	token, err := m.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = m.ValidateRefreshToken(token)
	assert.NoError(t, err)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateAccessToken(uuid.NewString(), "x@example.com", "patron")
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateAccessToken(token)
	assert.Error(t, err)
}
