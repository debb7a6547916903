package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/orris-inc/helpdesk/internal/domain/user"
)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) CountByService(ctx context.Context, service string) (int64, error) {
	return 0, nil
}

// plainHasher prefixes the password so tests can assert on stored hashes.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
		return errors.New("password verification failed")
	}
	return nil
}

type serviceLanding struct{ admin string }

func (l serviceLanding) LandingPage(u *user.User) string {
	if u != nil && u.Service() == l.admin {
		return "/board/admin"
	}
	return "/board/employee"
}
