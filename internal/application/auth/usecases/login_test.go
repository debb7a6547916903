package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func usersByEmail(t *testing.T) *mockUserRepository {
	t.Helper()
	now := time.Now().UTC()
	alice, err := user.ReconstructUser(1, "alice", "alice@example.com", "hashed:secret1", "Sales", now, now)
	require.NoError(t, err)
	bob, err := user.ReconstructUser(2, "bob", "bob@example.com", "hashed:secret2", "ADMIN", now, now)
	require.NoError(t, err)

	return &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			switch email {
			case "alice@example.com":
				return alice, nil
			case "bob@example.com":
				return bob, nil
			}
			return nil, nil
		},
	}
}

func TestLoginUseCase_Execute(t *testing.T) {
	uc := NewLoginUseCase(usersByEmail(t), plainHasher{}, serviceLanding{admin: "ADMIN"}, logger.NewNopLogger())

	tests := []struct {
		name         string
		cmd          LoginCommand
		wantUserID   uint
		wantRedirect string
	}{
		{"employee", LoginCommand{Email: "alice@example.com", Password: "secret1"}, 1, "/board/employee"},
		{"admin", LoginCommand{Email: "bob@example.com", Password: "secret2"}, 2, "/board/admin"},
		{
			"back to original path",
			LoginCommand{Email: "alice@example.com", Password: "secret1", RedirectTo: "/board/employee/tickets/new-ticket"},
			1, "/board/employee/tickets/new-ticket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, result.User.ID())
			assert.Equal(t, tt.wantRedirect, result.RedirectTo)
		})
	}
}

func TestLoginUseCase_Execute_Rejected(t *testing.T) {
	uc := NewLoginUseCase(usersByEmail(t), plainHasher{}, serviceLanding{admin: "ADMIN"}, logger.NewNopLogger())

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		for _, cmd := range []LoginCommand{
			{Email: "nobody@example.com", Password: "secret1"},
			{Email: "alice@example.com", Password: "wrong-password"},
		} {
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.Equal(t, InvalidCredentialsMessage, errors.GetAppError(err).Message)
			assert.Equal(t, cmd.Email, errors.GetFormError(err).Fields["email"])
		}
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "alice", Password: "123"})
		formErr := errors.GetFormError(err)
		require.NotNil(t, formErr)
		assert.Len(t, formErr.FieldErrors, 2)
	})
}
