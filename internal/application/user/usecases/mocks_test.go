package usecases

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/user"
)

type memoryUsers struct {
	users   map[uint]*user.User
	deleted []uint
}

func newMemoryUsers(users ...*user.User) *memoryUsers {
	m := &memoryUsers{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *memoryUsers) Create(ctx context.Context, u *user.User) error { return nil }

func (m *memoryUsers) Update(ctx context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

func (m *memoryUsers) Delete(ctx context.Context, id uint) error {
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	result := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username() < result[j].Username() })
	return result, nil
}

func (m *memoryUsers) CountByService(ctx context.Context, service string) (int64, error) {
	return 0, nil
}

type recordingTx struct {
	calls int
}

func (r *recordingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}

type stepRecorder struct {
	steps  []string
	failAt string
}

func (s *stepRecorder) Execute(ctx context.Context, userID uint) (int64, error) {
	s.steps = append(s.steps, "tickets")
	if s.failAt == "tickets" {
		return 0, errors.New("tickets failed")
	}
	return 2, nil
}

func (s *stepRecorder) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	s.steps = append(s.steps, "notes")
	if s.failAt == "notes" {
		return 0, errors.New("notes failed")
	}
	return 1, nil
}

type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (prefixHasher) Verify(password, hash string) error   { return nil }

func mustUser(id uint, username, email, service string) *user.User {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, username, email, "hashed:old", service, now, now)
	if err != nil {
		panic(err)
	}
	return u
}
