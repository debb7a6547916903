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
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// InvalidCredentialsMessage does not reveal whether the email is registered.
const InvalidCredentialsMessage = "Email / password combination not valid or need to register first"

type LoginCommand struct {
	Email      string
	Password   string
	RedirectTo string
}

type LoginResult struct {
	User       *user.User
	RedirectTo string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	landing  LandingResolver
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	landing LandingResolver,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		landing:  landing,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	fields := map[string]string{
		"email":    cmd.Email,
		"password": cmd.Password,
	}

	if fieldErrors := validation.Collect(map[string]validation.Rule{
		"email":    {Value: cmd.Email, Check: validation.Email},
		"password": {Value: cmd.Password, Check: validation.Password},
	}); fieldErrors != nil {
		return nil, errors.NewFieldErrors(fieldErrors, fields)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		uc.logger.Debugw("login for unknown email", "email", utils.MaskEmail(cmd.Email))
		return nil, errors.NewFormError(errors.NewValidationError(InvalidCredentialsMessage), fields)
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "user_id", existing.ID())
		return nil, errors.NewFormError(errors.NewValidationError(InvalidCredentialsMessage), fields)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &LoginResult{
		User:       existing,
		RedirectTo: identity.SafeRedirect(cmd.RedirectTo, uc.landing.LandingPage(existing)),
	}, nil
}
