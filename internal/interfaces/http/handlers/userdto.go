package handlers

import (
	userUsecases "github.com/orris-inc/helpdesk/internal/application/user/usecases"
)

type UserRequest struct {
	Username   string `form:"username"`
	Email      string `form:"email"`
	Password   string `form:"password"`
	Service    string `form:"service"`
	RedirectTo string `form:"redirectTo" validate:"max=2048"`
}

func (r *UserRequest) Fields() map[string]string {
	return map[string]string{
		"username": r.Username,
		"email":    r.Email,
		"password": r.Password,
		"service":  r.Service,
	}
}

func (r *UserRequest) ToCommand(userID uint) userUsecases.UpdateUserCommand {
	return userUsecases.UpdateUserCommand{
		UserID:   userID,
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Service:  r.Service,
	}
}
