package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

// User is a helpdesk account. The service names the department the user works in;
// it doubles as the marker that grants access to the admin board.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	service      string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash, service string) (*User, error) {
	u := &User{}
	if err := u.apply(username, email, service); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	u.passwordHash = passwordHash
	u.createdAt = now
	u.updatedAt = now
	return u, nil
}

func ReconstructUser(
	id uint,
	username, email, passwordHash, service string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		service:      service,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Service() string      { return u.service }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile overwrites the editable account fields.
func (u *User) UpdateProfile(username, email, service string) error {
	if err := u.apply(username, email, service); err != nil {
		return err
	}
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) apply(username, email, service string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if strings.TrimSpace(service) == "" {
		return fmt.Errorf("service is required")
	}
	u.username = username
	u.email = email
	u.service = service
	return nil
}
