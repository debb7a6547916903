package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/application/validation"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID   uint
	Username string
	Email    string
	Password string
	Service  string
}

func (c UpdateUserCommand) fields() map[string]string {
	return map[string]string{
		"username": c.Username,
		"email":    c.Email,
		"password": c.Password,
		"service":  c.Service,
	}
}

// UpdateUserUseCase rewrites a profile. The submitted password always replaces
// the stored hash.
type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if fieldErrors := validation.Collect(map[string]validation.Rule{
		"username": {Value: cmd.Username, Check: validation.Username},
		"email":    {Value: cmd.Email, Check: validation.Email},
		"password": {Value: cmd.Password, Check: validation.Password},
		"service":  {Value: cmd.Service, Check: validation.Service},
	}); fieldErrors != nil {
		return nil, errors.NewFieldErrors(fieldErrors, cmd.fields())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	email := strings.TrimSpace(cmd.Email)
	owner, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if owner != nil && owner.ID() != u.ID() {
		return nil, errors.NewFormError(
			errors.NewConflictError(fmt.Sprintf("User with email '%s' already exists", email)),
			cmd.fields(),
		)
	}

	if err := u.UpdateProfile(cmd.Username, email, cmd.Service); err != nil {
		return nil, errors.NewFormError(errors.NewValidationError(err.Error()), cmd.fields())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.ChangePasswordHash(hash); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewFormError(
				errors.NewConflictError(fmt.Sprintf("User with email '%s' already exists", email)),
				cmd.fields(),
			)
		}
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
