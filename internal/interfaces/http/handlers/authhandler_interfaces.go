package handlers

import (
	"context"
	"net/http"

	authUsecases "github.com/orris-inc/helpdesk/internal/application/auth/usecases"
	catalogdto "github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/infrastructure/session"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd authUsecases.RegisterCommand) (*authUsecases.RegisterResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error)
}

type entryLister interface {
	Execute(ctx context.Context, kind catalog.Kind, query string) ([]*catalogdto.EntryDTO, error)
}

// SessionStore issues, reads and expires session cookies.
type SessionStore interface {
	Create(userID uint) (*http.Cookie, error)
	ReadRequest(r *http.Request) session.Session
	Destroy(sess session.Session) *http.Cookie
}
