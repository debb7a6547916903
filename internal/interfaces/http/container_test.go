package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	sharedConfig "github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const e2eSeed = `
admin:
  username: root
  email: root@example.com
  password: changeme
  service: IT
statuses: [Open, Closed]
products: [Laptop-X, Phone-Y]
services: [IT, Sales]
`

type testApp struct {
	t         *testing.T
	container *Container
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	cfg := &config.Config{
		Server:   sharedConfig.ServerConfig{Mode: "test"},
		Database: sharedConfig.DatabaseConfig{Driver: "sqlite"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: bcrypt.MinCost},
			Session: sharedConfig.SessionConfig{
				CookieName: "__session",
				MaxAgeDays: 30,
				Secrets:    []string{"e2e-secret"},
				Path:       "/",
			},
			AdminServices: []string{"IT"},
		},
	}

	f, err := seeds.Parse([]byte(e2eSeed))
	require.NoError(t, err)
	seeder := seeds.NewSeeder(
		repository.NewUserRepository(gdb, log),
		repository.NewLookupRepository(gdb, log),
		auth.NewBcryptPasswordHasher(bcrypt.MinCost),
		db.NewTransactionManager(gdb),
		cfg.Auth.AdminServices,
		log,
	)
	_, err = seeder.Run(context.Background(), f)
	require.NoError(t, err)

	c, err := NewContainer(gdb, cfg, log)
	require.NoError(t, err)
	c.SetupRoutes(cfg)
	t.Cleanup(c.Shutdown)

	return &testApp{t: t, container: c}
}

func (a *testApp) do(method, path string, form url.Values, cookie *nethttp.Cookie) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *nethttp.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.container.GetEngine().ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *nethttp.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "__session" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func (a *testApp) login(email, password string) *nethttp.Cookie {
	a.t.Helper()
	w := a.do(nethttp.MethodPost, "/login", url.Values{"email": {email}, "password": {password}}, nil)
	require.Equal(a.t, nethttp.StatusSeeOther, w.Code, w.Body.String())
	return sessionCookie(a.t, w)
}

func TestApp_RegisterLandsOnEmployeeBoard(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodPost, "/register", url.Values{
		"username": {"ann"},
		"email":    {"ann@example.com"},
		"password": {"secret-pass"},
		"service":  {"Sales"},
	}, nil)

	assert.Equal(t, nethttp.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/employee", w.Header().Get("Location"))

	w = app.do(nethttp.MethodGet, "/board/employee", nil, sessionCookie(t, w))
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ann@example.com")
}

func TestApp_RegisterReportsEveryBadField(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodPost, "/register", url.Values{
		"username": {"ab"},
		"email":    {"x"},
		"password": {strings.Repeat("p", 80)},
		"service":  {"Sales"},
	}, nil)

	require.Equal(t, nethttp.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Username must be at least 3 characters long")
	assert.Contains(t, body, "Email address is not valid")
	assert.Contains(t, body, "Password is too long")
}

func TestApp_RegisterMultibytePasswordIsFieldError(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodPost, "/register", url.Values{
		"username": {"ann"},
		"email":    {"ann@example.com"},
		"password": {strings.Repeat("é", 40)},
		"service":  {"Sales"},
	}, nil)

	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password is too long")
}

func TestApp_AdminLoginLandsOnAdminBoard(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodPost, "/login", url.Values{
		"email":    {"root@example.com"},
		"password": {"changeme"},
	}, nil)

	assert.Equal(t, nethttp.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/admin", w.Header().Get("Location"))
}

func TestApp_LoginRedirectsBackToRequestedPage(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodGet, "/board/employee/tickets/new-ticket", nil, nil)
	require.Equal(t, nethttp.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Equal(t, "/login?redirectTo=%2Fboard%2Femployee%2Ftickets%2Fnew-ticket", location)

	w = app.do(nethttp.MethodPost, "/login", url.Values{
		"email":      {"root@example.com"},
		"password":   {"changeme"},
		"redirectTo": {"/board/employee/tickets/new-ticket"},
	}, nil)
	assert.Equal(t, nethttp.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/employee/tickets/new-ticket", w.Header().Get("Location"))
}

func TestApp_TicketLifecycle(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("root@example.com", "changeme")

	w := app.do(nethttp.MethodPost, "/board/employee/tickets/new-ticket", url.Values{
		"intent":      {"create"},
		"title":       {"Printer jam"},
		"description": {"Paper stuck in **tray two**"},
		"product":     {"Laptop-X"},
		"status":      {"Open"},
	}, admin)
	require.Equal(t, nethttp.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/board/employee/tickets/new-ticket", w.Header().Get("Location"))

	withQuery := app.do(nethttp.MethodGet, "/board/employee/tickets?query=", nil, admin)
	withoutQuery := app.do(nethttp.MethodGet, "/board/employee/tickets", nil, admin)
	require.Equal(t, nethttp.StatusOK, withQuery.Code)
	assert.Equal(t, withoutQuery.Body.String(), withQuery.Body.String())
	assert.Contains(t, withQuery.Body.String(), `"count":1`)
	assert.Contains(t, withQuery.Body.String(), `\u003cstrong\u003etray two\u003c/strong\u003e`)

	w = app.do(nethttp.MethodGet, "/board/admin/users/ticketlist?query=printer", nil, admin)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = app.do(nethttp.MethodPost, "/board/employee/tickets/new-ticket", url.Values{
		"intent":      {"create"},
		"title":       {"Broken"},
		"description": {"Nothing works"},
		"product":     {"Toaster"},
		"status":      {"Open"},
	}, admin)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"product"`)
}

func TestApp_UnsupportedIntent(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("root@example.com", "changeme")

	w := app.do(nethttp.MethodPost, "/board/admin/products/new-product", url.Values{
		"intent": {"archive"},
		"device": {"Tablet-Z"},
	}, admin)

	assert.Equal(t, nethttp.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "The intent archive is not supported")
}

func TestApp_DuplicateProduct(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("root@example.com", "changeme")

	w := app.do(nethttp.MethodPost, "/board/admin/products/new-product", url.Values{
		"intent": {"create"},
		"device": {"Laptop-X"},
	}, admin)

	assert.Equal(t, nethttp.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestApp_EmployeeCannotOpenAdminBoard(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodPost, "/register", url.Values{
		"username": {"bob"},
		"email":    {"bob@example.com"},
		"password": {"secret-pass"},
		"service":  {"Sales"},
	}, nil)
	require.Equal(t, nethttp.StatusSeeOther, w.Code)

	w = app.do(nethttp.MethodGet, "/board/admin/users/userlist", nil, sessionCookie(t, w))
	assert.Equal(t, nethttp.StatusForbidden, w.Code)
}

func TestApp_Logout(t *testing.T) {
	app := newTestApp(t)
	admin := app.login("root@example.com", "changeme")

	w := app.do(nethttp.MethodPost, "/logout", url.Values{}, admin)
	assert.Equal(t, nethttp.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = app.do(nethttp.MethodGet, "/logout", nil, nil)
	assert.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestApp_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	w := app.do(nethttp.MethodGet, "/healthz", nil, nil)

	assert.Equal(t, nethttp.StatusOK, w.Code)
}
