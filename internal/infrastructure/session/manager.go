// Package session issues and verifies the signed session cookie. The cookie holds
// an HS256 JWT whose only application claim is the user id; nothing is stored
// server side.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/config"
)

const (
	DefaultCookieName = "__session"
	DefaultMaxAge     = 30 * 24 * time.Hour
)

// Claims is the signed payload of a session cookie.
type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Session is the verified content of a session cookie. The zero value is anonymous.
type Session struct {
	userID uint
}

// UserID returns the signed-in user id, or false for an anonymous session.
func (s Session) UserID() (uint, bool) {
	return s.userID, s.userID != 0
}

// Anonymous reports whether the session carries no user.
func (s Session) Anonymous() bool {
	return s.userID == 0
}

type Manager struct {
	name    string
	path    string
	maxAge  time.Duration
	secure  bool
	secrets [][]byte
	now     func() time.Time
}

// NewManager builds a Manager from cfg. Secrets are ordered newest first; the
// first signs new cookies and every one of them is accepted when reading.
func NewManager(cfg config.SessionConfig) (*Manager, error) {
	secrets := make([][]byte, 0, len(cfg.Secrets))
	for _, s := range cfg.Secrets {
		if s == "" {
			continue
		}
		secrets = append(secrets, []byte(s))
	}
	if len(secrets) == 0 {
		return nil, fmt.Errorf("at least one session secret is required")
	}

	m := &Manager{
		name:    cfg.CookieName,
		path:    cfg.Path,
		maxAge:  cfg.MaxAge(),
		secure:  cfg.Secure,
		secrets: secrets,
		now:     biztime.NowUTC,
	}
	if m.name == "" {
		m.name = DefaultCookieName
	}
	if m.path == "" {
		m.path = "/"
	}
	if m.maxAge <= 0 {
		m.maxAge = DefaultMaxAge
	}
	return m, nil
}

func (m *Manager) CookieName() string {
	return m.name
}

// Create signs a session for userID and returns the cookie to set.
func (m *Manager) Create(userID uint) (*http.Cookie, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := m.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secrets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	return m.cookie(signed, int(m.maxAge/time.Second), now.Add(m.maxAge)), nil
}

// Read verifies the session cookie found in a raw Cookie header. A missing,
// tampered or expired cookie yields an anonymous Session.
func (m *Manager) Read(cookieHeader string) Session {
	if cookieHeader == "" {
		return Session{}
	}
	req := &http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	return m.ReadRequest(req)
}

// ReadRequest is Read for the cookies of r.
func (m *Manager) ReadRequest(r *http.Request) Session {
	c, err := r.Cookie(m.name)
	if err != nil || c.Value == "" {
		return Session{}
	}
	return m.verify(c.Value)
}

func (m *Manager) verify(value string) Session {
	for _, secret := range m.secrets {
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
			return secret, nil
		},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(m.now),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			continue
		}
		return Session{userID: claims.UserID}
	}
	return Session{}
}

// Destroy returns a cookie that expires the session immediately.
func (m *Manager) Destroy(Session) *http.Cookie {
	return m.cookie("", -1, time.Unix(0, 0).UTC())
}

func (m *Manager) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     m.path,
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
