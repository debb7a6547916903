package usecases

import "github.com/orris-inc/helpdesk/internal/domain/user"

// LandingResolver picks where a user goes after signing in.
type LandingResolver interface {
	LandingPage(u *user.User) string
}
