package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  alice ", "alice@example.com", "$2a$10$hash", "Sales")
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "alice@example.com", u.Email())
	assert.Equal(t, "Sales", u.Service())
	assert.Zero(t, u.ID())
	assert.False(t, u.CreatedAt().IsZero())
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name                           string
		username, email, hash, service string
		wantErr                        string
	}{
		{"missing username", "", "a@b.c", "h", "Sales", "username is required"},
		{"email without at", "alice", "alice.example.com", "h", "Sales", "email is not valid"},
		{"missing hash", "alice", "a@b.c", "", "Sales", "password hash is required"},
		{"missing service", "alice", "a@b.c", "h", " ", "service is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.hash, tt.service)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUser_UpdateProfile(t *testing.T) {
	created := time.Now().Add(-time.Hour).UTC()
	u, err := ReconstructUser(4, "bob", "bob@example.com", "h", "Sales", created, created)
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("robert", "robert@example.com", "Information Technology"))

	assert.Equal(t, "robert", u.Username())
	assert.Equal(t, "robert@example.com", u.Email())
	assert.Equal(t, "Information Technology", u.Service())
	assert.True(t, u.UpdatedAt().After(created))
	assert.Equal(t, created, u.CreatedAt())
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "h", "Sales")
	require.NoError(t, err)

	require.NoError(t, u.SetID(9))
	assert.Error(t, u.SetID(10))
	assert.Equal(t, uint(9), u.ID())
}
