package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/identity"
	"github.com/orris-inc/helpdesk/internal/application/validation"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username   string
	Email      string
	Password   string
	Service    string
	RedirectTo string
}

type RegisterResult struct {
	User       *user.User
	RedirectTo string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	landing  LandingResolver
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	landing LandingResolver,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		landing:  landing,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	fields := map[string]string{
		"username": cmd.Username,
		"email":    cmd.Email,
		"password": cmd.Password,
		"service":  cmd.Service,
	}

	if fieldErrors := validation.Collect(map[string]validation.Rule{
		"username": {Value: cmd.Username, Check: validation.Username},
		"email":    {Value: cmd.Email, Check: validation.Email},
		"password": {Value: cmd.Password, Check: validation.Password},
		"service":  {Value: cmd.Service, Check: validation.Service},
	}); fieldErrors != nil {
		return nil, errors.NewFieldErrors(fieldErrors, fields)
	}

	email := strings.TrimSpace(cmd.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, errors.NewFormError(
			errors.NewConflictError(fmt.Sprintf("User with email '%s' already exists", email)),
			fields,
		)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Username, email, hash, cmd.Service)
	if err != nil {
		return nil, errors.NewFormError(errors.NewValidationError(err.Error()), fields)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewFormError(
				errors.NewConflictError(fmt.Sprintf("User with email '%s' already exists", email)),
				fields,
			)
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "service", newUser.Service())

	return &RegisterResult{
		User:       newUser,
		RedirectTo: identity.SafeRedirect(cmd.RedirectTo, uc.landing.LandingPage(newUser)),
	}, nil
}
