package user

import "context"

// Repository defines the interface for user data operations. Lookups return
// (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List returns users ordered by username. A non-empty Query keeps only users
	// whose username, email or service contains it, ignoring case.
	List(ctx context.Context, filter ListFilter) ([]*User, error)
	CountByService(ctx context.Context, service string) (int64, error)
}

type ListFilter struct {
	Query string
}
