package handlers

import (
	"context"

	userdto "github.com/orris-inc/helpdesk/internal/application/user/dto"
	userUsecases "github.com/orris-inc/helpdesk/internal/application/user/usecases"
)

// Use case interfaces for UserHandler - enables unit testing with mocks.

type listUsersUseCase interface {
	Execute(ctx context.Context, query string) ([]*userdto.UserDTO, error)
	Get(ctx context.Context, userID uint) (*userdto.UserDTO, error)
}

type updateUserUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.UpdateUserCommand) (*userdto.UserDTO, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, userID uint) error
}
