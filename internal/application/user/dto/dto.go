package dto

import (
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

// UserDTO never carries the password hash.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Service:   u.Service(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToUserDTOList(users []*user.User) []*UserDTO {
	result := mapper.MapSlicePtrSkipNil(users, ToUserDTO)
	if result == nil {
		return []*UserDTO{}
	}
	return result
}
