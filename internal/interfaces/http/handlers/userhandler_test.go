package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "github.com/orris-inc/helpdesk/internal/application/user/dto"
	userUsecases "github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListUsersUC struct {
	users []*userdto.UserDTO
	user  *userdto.UserDTO
	err   error
	query string
}

func (m *mockListUsersUC) Execute(_ context.Context, query string) ([]*userdto.UserDTO, error) {
	m.query = query
	return m.users, m.err
}

func (m *mockListUsersUC) Get(_ context.Context, _ uint) (*userdto.UserDTO, error) {
	return m.user, m.err
}

type mockUpdateUserUC struct {
	err    error
	called bool
	cmd    userUsecases.UpdateUserCommand
}

func (m *mockUpdateUserUC) Execute(_ context.Context, cmd userUsecases.UpdateUserCommand) (*userdto.UserDTO, error) {
	m.called = true
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &userdto.UserDTO{ID: cmd.UserID, Email: cmd.Email}, nil
}

type mockDeleteUserUC struct {
	err     error
	deleted uint
}

func (m *mockDeleteUserUC) Execute(_ context.Context, userID uint) error {
	m.deleted = userID
	return m.err
}

type userTestDeps struct {
	list   *mockListUsersUC
	update *mockUpdateUserUC
	delete *mockDeleteUserUC
}

func newTestUserHandler(t *testing.T, deps userTestDeps) *UserHandler {
	if deps.list == nil {
		deps.list = &mockListUsersUC{}
	}
	if deps.update == nil {
		deps.update = &mockUpdateUserUC{}
	}
	if deps.delete == nil {
		deps.delete = &mockDeleteUserUC{}
	}
	return NewUserHandler(deps.list, deps.update, deps.delete, &mockEntryLister{}, newTestSessions(t), testutil.NewMockLogger())
}

// =====================================================================
// Admin user list
// =====================================================================

func TestUserHandler_ListUsers_PassesQuery(t *testing.T) {
	list := &mockListUsersUC{users: []*userdto.UserDTO{{ID: 1, Email: "ann@example.com"}}}
	handler := newTestUserHandler(t, userTestDeps{list: list})

	c, w := testutil.NewTestContext(http.MethodGet, "/board/admin/users/userlist", nil)
	testutil.SetQueryParams(c, map[string]string{"query": "ann"})

	handler.ListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann", list.query)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	list := &mockListUsersUC{err: errors.NewNotFoundError("User not found")}
	handler := newTestUserHandler(t, userTestDeps{list: list})

	c, w := testutil.NewTestContext(http.MethodGet, "/board/admin/users/userlist/99", nil)
	testutil.SetURLParam(c, "userId", "99")

	handler.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	handler := newTestUserHandler(t, userTestDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/board/admin/users/userlist/abc", nil)
	testutil.SetURLParam(c, "userId", "abc")

	handler.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_UpdateUser_Update(t *testing.T) {
	update := &mockUpdateUserUC{}
	handler := newTestUserHandler(t, userTestDeps{update: update})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/users/userlist/5", url.Values{
		"intent":   {"update"},
		"username": {"bob"},
		"email":    {"bob@example.com"},
		"service":  {"IT"},
	})
	testutil.SetURLParam(c, "userId", "5")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "admin@example.com", "IT"))

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/admin/users/userlist", w.Header().Get("Location"))
	assert.Equal(t, uint(5), update.cmd.UserID)
	assert.Empty(t, w.Header().Get("Set-Cookie"), "the admin keeps their own session")
}

func TestUserHandler_UpdateUser_DeleteOther(t *testing.T) {
	del := &mockDeleteUserUC{}
	update := &mockUpdateUserUC{}
	handler := newTestUserHandler(t, userTestDeps{update: update, delete: del})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/users/userlist/5", url.Values{
		"intent": {"delete"},
	})
	testutil.SetURLParam(c, "userId", "5")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "admin@example.com", "IT"))

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/admin/users/userlist", w.Header().Get("Location"))
	assert.Equal(t, uint(5), del.deleted)
	assert.False(t, update.called)
}

func TestUserHandler_UpdateUser_DeleteSelfEndsSession(t *testing.T) {
	del := &mockDeleteUserUC{}
	handler := newTestUserHandler(t, userTestDeps{delete: del})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/users/userlist/1", url.Values{
		"intent": {"delete"},
	})
	testutil.SetURLParam(c, "userId", "1")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "admin@example.com", "IT"))

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestUserHandler_UpdateUser_UnsupportedIntent(t *testing.T) {
	handler := newTestUserHandler(t, userTestDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/users/userlist/5", url.Values{
		"intent": {"create"},
	})
	testutil.SetURLParam(c, "userId", "5")

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "The intent create is not supported", resp.Error.Message)
}

func TestUserHandler_UpdateUser_FieldErrors(t *testing.T) {
	update := &mockUpdateUserUC{
		err: errors.NewFieldErrors(map[string]string{"email": "Email is invalid"}, nil),
	}
	handler := newTestUserHandler(t, userTestDeps{update: update})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/users/userlist/5", url.Values{
		"intent": {"update"},
		"email":  {"not-an-email"},
	})
	testutil.SetURLParam(c, "userId", "5")

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Email is invalid", resp.Error.FieldErrors["email"])
}

// =====================================================================
// Employee profile
// =====================================================================

func TestUserHandler_GetProfile_OtherUserForbidden(t *testing.T) {
	handler := newTestUserHandler(t, userTestDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/board/employee/users/2", nil)
	testutil.SetURLParam(c, "userId", "2")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "ann@example.com", "Sales"))

	handler.GetProfile(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_GetProfile_Self(t *testing.T) {
	list := &mockListUsersUC{user: &userdto.UserDTO{ID: 1, Email: "ann@example.com"}}
	handler := newTestUserHandler(t, userTestDeps{list: list})

	c, w := testutil.NewTestContext(http.MethodGet, "/board/employee/users/1", nil)
	testutil.SetURLParam(c, "userId", "1")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "ann@example.com", "Sales"))

	handler.GetProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ann@example.com")
}

func TestUserHandler_UpdateProfile_RenewsSession(t *testing.T) {
	update := &mockUpdateUserUC{}
	handler := newTestUserHandler(t, userTestDeps{update: update})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/employee/users/1", url.Values{
		"intent":   {"update"},
		"username": {"ann"},
		"email":    {"ann@example.com"},
		"service":  {"Sales"},
	})
	testutil.SetURLParam(c, "userId", "1")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "ann@example.com", "Sales"))

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/employee", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "__session=")
	assert.True(t, update.called)
}

func TestUserHandler_UpdateProfile_Delete(t *testing.T) {
	del := &mockDeleteUserUC{}
	handler := newTestUserHandler(t, userTestDeps{delete: del})

	c, w := testutil.NewTestContext(http.MethodPost, "/board/employee/users/1", url.Values{
		"intent": {"delete"},
	})
	testutil.SetURLParam(c, "userId", "1")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "ann@example.com", "Sales"))

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, uint(1), del.deleted)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
