package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/identity"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/infrastructure/session"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// SessionReader reads and expires the session cookie.
type SessionReader interface {
	ReadRequest(r *http.Request) session.Session
	Destroy(sess session.Session) *http.Cookie
}

// IdentityResolver loads the user behind a session.
type IdentityResolver interface {
	GetUser(ctx context.Context, sess identity.Session) (*user.User, error)
	RequireUser(ctx context.Context, sess identity.Session, redirectTo string) (*user.User, error)
	RequireAdminUser(ctx context.Context, sess identity.Session, redirectTo string) (*user.User, error)
}

type AuthMiddleware struct {
	sessions          SessionReader
	resolver          IdentityResolver
	logoutOnForbidden bool
	logger            logger.Interface
}

// NewAuthMiddleware builds the session middleware. With logoutOnForbidden set,
// a user failing the admin check is logged out instead of receiving 403.
func NewAuthMiddleware(sessions SessionReader, resolver IdentityResolver, logoutOnForbidden bool, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:          sessions,
		resolver:          resolver,
		logoutOnForbidden: logoutOnForbidden,
		logger:            logger,
	}
}

// OptionalAuth attaches the session user when there is one. Anonymous
// requests pass through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.readSession(c)
		u, err := m.resolver.GetUser(c.Request.Context(), sess)
		if err != nil {
			m.fail(c, sess, err)
			return
		}
		if u != nil {
			setUser(c, u)
		}
		c.Next()
	}
}

// RequireAuth sends anonymous clients to the login page.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.readSession(c)
		u, err := m.resolver.RequireUser(c.Request.Context(), sess, c.Request.URL.Path)
		if err != nil {
			m.fail(c, sess, err)
			return
		}
		setUser(c, u)
		c.Next()
	}
}

// RequireAdmin lets only users of an admin service through.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.readSession(c)
		u, err := m.resolver.RequireAdminUser(c.Request.Context(), sess, c.Request.URL.Path)
		if err != nil {
			m.fail(c, sess, err)
			return
		}
		setUser(c, u)
		c.Next()
	}
}

func (m *AuthMiddleware) readSession(c *gin.Context) session.Session {
	sess := m.sessions.ReadRequest(c.Request)
	c.Set(constants.ContextKeySession, sess)
	return sess
}

func (m *AuthMiddleware) fail(c *gin.Context, sess session.Session, err error) {
	if loginErr, ok := identity.IsLoginRequired(err); ok {
		c.Redirect(http.StatusFound, loginErr.Location)
		c.Abort()
		return
	}

	if errors.Is(err, identity.ErrStaleSession) {
		m.Logout(c, sess)
		return
	}

	if apperrors.IsForbiddenError(err) && m.logoutOnForbidden {
		m.Logout(c, sess)
		return
	}

	utils.ErrorResponseWithError(c, err)
	c.Abort()
}

// Logout expires the session cookie and sends the client to the login page.
func (m *AuthMiddleware) Logout(c *gin.Context, sess session.Session) {
	if userID, ok := sess.UserID(); ok {
		m.logger.Infow("logging out session", "user_id", userID)
	}
	utils.SetCookie(c, m.sessions.Destroy(sess))
	c.Redirect(http.StatusSeeOther, constants.PathLogin)
	c.Abort()
}

func setUser(c *gin.Context, u *user.User) {
	c.Set(constants.ContextKeyUser, u)
	c.Set(constants.ContextKeyUserID, u.ID())
}

// CurrentUser returns the user attached by the auth middleware, or nil.
func CurrentUser(c *gin.Context) *user.User {
	v, ok := c.Get(constants.ContextKeyUser)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}

// CurrentSession returns the session read by the auth middleware, or an
// anonymous one.
func CurrentSession(c *gin.Context) session.Session {
	v, ok := c.Get(constants.ContextKeySession)
	if !ok {
		return session.Session{}
	}
	sess, _ := v.(session.Session)
	return sess
}
