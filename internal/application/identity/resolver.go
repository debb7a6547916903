// Package identity turns a session into the user behind it and enforces the
// access rules of the two boards.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// ErrStaleSession is returned when the session names a user that no longer exists.
var ErrStaleSession = errors.New("session refers to a missing user")

// Session is the part of a session the resolver needs.
type Session interface {
	UserID() (uint, bool)
}

// RoleChecker decides whether a user's service grants admin access.
type RoleChecker interface {
	IsAdmin(service string) (bool, error)
}

// LoginRequiredError asks the caller to send the client to the login page.
type LoginRequiredError struct {
	Location string
}

func (e *LoginRequiredError) Error() string {
	return "login required"
}

// IsLoginRequired reports whether err asks for a login redirect.
func IsLoginRequired(err error) (*LoginRequiredError, bool) {
	var target *LoginRequiredError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

type Resolver struct {
	userRepo user.Repository
	roles    RoleChecker
	logger   logger.Interface
}

func NewResolver(userRepo user.Repository, roles RoleChecker, logger logger.Interface) *Resolver {
	return &Resolver{
		userRepo: userRepo,
		roles:    roles,
		logger:   logger,
	}
}

// GetUser returns nil for an anonymous session.
func (r *Resolver) GetUser(ctx context.Context, sess Session) (*user.User, error) {
	userID, ok := sess.UserID()
	if !ok {
		return nil, nil
	}

	u, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		r.logger.Errorw("failed to load session user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if u == nil {
		r.logger.Warnw("session refers to missing user", "user_id", userID)
		return nil, ErrStaleSession
	}

	return u, nil
}

// RequireUserID returns the session user id or a LoginRequiredError that
// brings the client back to redirectTo after login.
func (r *Resolver) RequireUserID(sess Session, redirectTo string) (uint, error) {
	userID, ok := sess.UserID()
	if !ok {
		return 0, &LoginRequiredError{Location: LoginLocation(redirectTo)}
	}
	return userID, nil
}

func (r *Resolver) RequireUser(ctx context.Context, sess Session, redirectTo string) (*user.User, error) {
	if _, err := r.RequireUserID(sess, redirectTo); err != nil {
		return nil, err
	}
	return r.GetUser(ctx, sess)
}

// RequireAdminUser behaves like RequireUser and additionally returns a
// forbidden error when the user's service is not an admin service.
func (r *Resolver) RequireAdminUser(ctx context.Context, sess Session, redirectTo string) (*user.User, error) {
	u, err := r.RequireUser(ctx, sess, redirectTo)
	if err != nil {
		return nil, err
	}

	admin, err := r.IsAdmin(u)
	if err != nil {
		return nil, err
	}
	if !admin {
		r.logger.Warnw("admin board access denied", "user_id", u.ID(), "service", u.Service())
		return nil, apperrors.NewForbiddenError("Admin access required")
	}

	return u, nil
}

func (r *Resolver) IsAdmin(u *user.User) (bool, error) {
	if u == nil {
		return false, nil
	}
	allowed, err := r.roles.IsAdmin(u.Service())
	if err != nil {
		return false, fmt.Errorf("failed to check admin role: %w", err)
	}
	return allowed, nil
}

// LandingPage is the board a user is sent to after login.
func (r *Resolver) LandingPage(u *user.User) string {
	if admin, err := r.IsAdmin(u); err == nil && admin {
		return constants.PathAdminBoard
	}
	return constants.PathEmployeeBoard
}

// LoginLocation builds the login URL that returns to redirectTo.
func LoginLocation(redirectTo string) string {
	if redirectTo == "" {
		return constants.PathLogin
	}
	return constants.PathLogin + "?redirectTo=" + url.QueryEscape(redirectTo)
}

// SafeRedirect returns to when it is a same-site path and fallback otherwise.
func SafeRedirect(to, fallback string) string {
	if to == "" || !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") {
		return fallback
	}
	return to
}
