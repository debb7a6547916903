package handlers

import (
	authUsecases "github.com/orris-inc/helpdesk/internal/application/auth/usecases"
)

type LoginRequest struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	RedirectTo string `form:"redirectTo" validate:"max=2048"`
}

func (r *LoginRequest) Fields() map[string]string {
	return map[string]string{
		"email":    r.Email,
		"password": r.Password,
	}
}

func (r *LoginRequest) ToCommand() authUsecases.LoginCommand {
	return authUsecases.LoginCommand{
		Email:      r.Email,
		Password:   r.Password,
		RedirectTo: r.RedirectTo,
	}
}

type RegisterRequest struct {
	Username   string `form:"username"`
	Email      string `form:"email"`
	Password   string `form:"password"`
	Service    string `form:"service"`
	RedirectTo string `form:"redirectTo" validate:"max=2048"`
}

func (r *RegisterRequest) Fields() map[string]string {
	return map[string]string{
		"username": r.Username,
		"email":    r.Email,
		"password": r.Password,
		"service":  r.Service,
	}
}

func (r *RegisterRequest) ToCommand() authUsecases.RegisterCommand {
	return authUsecases.RegisterCommand{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		Service:    r.Service,
		RedirectTo: r.RedirectTo,
	}
}
