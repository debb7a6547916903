package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type fakeSession struct {
	id uint
}

func (s fakeSession) UserID() (uint, bool) { return s.id, s.id != 0 }

type mockUserRepository struct {
	user.Repository
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type staticRoles map[string]bool

func (s staticRoles) IsAdmin(service string) (bool, error) { return s[service], nil }

func newUser(t *testing.T, id uint, service string) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "alice", "alice@x.io", "hash", service, now, now)
	require.NoError(t, err)
	return u
}

func newResolver(repo user.Repository) *Resolver {
	return NewResolver(repo, staticRoles{"ADMIN": true}, logger.NewNopLogger())
}

func TestResolver_GetUser(t *testing.T) {
	alice := newUser(t, 7, "Sales")
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 7 {
				return alice, nil
			}
			return nil, nil
		},
	}
	r := newResolver(repo)

	t.Run("anonymous", func(t *testing.T) {
		u, err := r.GetUser(context.Background(), fakeSession{})
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("known user", func(t *testing.T) {
		u, err := r.GetUser(context.Background(), fakeSession{id: 7})
		require.NoError(t, err)
		assert.Equal(t, alice, u)
	})

	t.Run("deleted user", func(t *testing.T) {
		_, err := r.GetUser(context.Background(), fakeSession{id: 8})
		assert.ErrorIs(t, err, ErrStaleSession)
	})

	t.Run("repository failure", func(t *testing.T) {
		failing := newResolver(&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, errors.New("connection refused")
			},
		})
		_, err := failing.GetUser(context.Background(), fakeSession{id: 7})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrStaleSession)
	})
}

func TestResolver_RequireUserID(t *testing.T) {
	r := newResolver(&mockUserRepository{})

	id, err := r.RequireUserID(fakeSession{id: 3}, "/board/employee")
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)

	_, err = r.RequireUserID(fakeSession{}, "/board/employee/tickets/new-ticket")
	loginErr, ok := IsLoginRequired(err)
	require.True(t, ok)
	assert.Equal(t, "/login?redirectTo=%2Fboard%2Femployee%2Ftickets%2Fnew-ticket", loginErr.Location)
}

func TestResolver_RequireAdminUser(t *testing.T) {
	admin := newUser(t, 1, "ADMIN")
	employee := newUser(t, 2, "Sales")
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			switch id {
			case 1:
				return admin, nil
			case 2:
				return employee, nil
			}
			return nil, nil
		},
	}
	r := newResolver(repo)
	ctx := context.Background()

	u, err := r.RequireAdminUser(ctx, fakeSession{id: 1}, "/board/admin")
	require.NoError(t, err)
	assert.Equal(t, admin, u)

	_, err = r.RequireAdminUser(ctx, fakeSession{id: 2}, "/board/admin")
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = r.RequireAdminUser(ctx, fakeSession{}, "/board/admin")
	_, ok := IsLoginRequired(err)
	assert.True(t, ok)
}

func TestResolver_LandingPage(t *testing.T) {
	r := newResolver(&mockUserRepository{})

	assert.Equal(t, "/board/admin", r.LandingPage(newUser(t, 1, "ADMIN")))
	assert.Equal(t, "/board/employee", r.LandingPage(newUser(t, 2, "Sales")))
	assert.Equal(t, "/board/employee", r.LandingPage(nil))
}

func TestLoginLocation(t *testing.T) {
	assert.Equal(t, "/login", LoginLocation(""))
	assert.Equal(t, "/login?redirectTo=%2Fboard%2Fadmin", LoginLocation("/board/admin"))
}

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		to   string
		want string
	}{
		{"/board/employee/tickets", "/board/employee/tickets"},
		{"", "/"},
		{"//evil.example", "/"},
		{"https://evil.example", "/"},
		{"board", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeRedirect(tt.to, "/"))
		})
	}
}
