package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro/internal/delivery/http/middleware"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	mockUsecase "bistro/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance with the production error handler, so
// tests observe the same status codes and bodies as clients do.
func newTestEcho() *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func newUserTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/users", h.List)
	e.GET("/users/:id", h.GetByID)
	e.GET("/users/email/:email", h.GetByEmail)
	e.POST("/users", h.Create)
	e.PUT("/users/:id", h.Update)
	e.DELETE("/users/:id", h.Delete)

	return e, uc
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_List_ReturnsUsers(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("ListUsers", mock.Anything).Return([]*entity.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", PhoneNumber: "01234567890"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", PhoneNumber: "01234567891"},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"},
		{"id":2,"name":"Bob","email":"bob@example.com","phoneNumber":"01234567891"}
	]`, rec.Body.String())
}

func TestUserHandler_List_EmptyIsOK(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("ListUsers", mock.Anything).Return([]*entity.User{}, nil)

	rec := doJSON(e, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("GetUserByID", mock.Anything, int64(99)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "find user by id"))

	rec := doJSON(e, http.MethodGet, "/users/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestUserHandler_GetByEmail_Found(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&entity.User{ID: 1, Name: "Alice", Email: "alice@example.com", PhoneNumber: "01234567890"}, nil)

	rec := doJSON(e, http.MethodGet, "/users/email/alice@example.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Create_DiscardsClientID(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.ID == 0
	})).Return(&entity.User{ID: 42, Name: "Alice", Email: "alice@example.com", PhoneNumber: "01234567890"}, nil)

	rec := doJSON(e, http.MethodPost, "/users",
		`{"id":55,"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestUserHandler_Create_FieldViolationsRenderAsReasons(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewFieldViolations(map[string]string{
			"name":  "Please use a name without numbers or specials",
			"email": "The email address must be in the format of name@domain.com",
		}))

	rec := doJSON(e, http.MethodPost, "/users", `{"name":"Al1ce","email":"nope","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"reasons":{
		"name":"Please use a name without numbers or specials",
		"email":"The email address must be in the format of name@domain.com"
	}}`, rec.Body.String())
}

func TestUserHandler_Create_DuplicateEmailRendersConflict(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewUniquenessViolation("email", domainerrors.MsgEmailAlreadyUsed))

	rec := doJSON(e, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"reasons":{"email":"That email is already used, please use a unique email"}}`,
		rec.Body.String())
}

func TestUserHandler_Update_IDMismatchConflictsWithoutPersisting(t *testing.T) {
	e, uc := newUserTestServer(t)

	rec := doJSON(e, http.MethodPut, "/users/7",
		`{"id":9,"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"reasons":{"id":"The User ID in the request body must match that of the User being updated"}}`,
		rec.Body.String())
	uc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserHandler_Update_MissingBodyIDIsBadRequest(t *testing.T) {
	e, uc := newUserTestServer(t)

	rec := doJSON(e, http.MethodPut, "/users/7",
		`{"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserHandler_Update_UnknownTargetIsNotFound(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("GetUserByID", mock.Anything, int64(7)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "find user by id"))

	rec := doJSON(e, http.MethodPut, "/users/7",
		`{"id":7,"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	uc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserHandler_Update_Success(t *testing.T) {
	e, uc := newUserTestServer(t)

	stored := &entity.User{ID: 7, Name: "Alice", Email: "old@example.com", PhoneNumber: "01234567890"}
	uc.On("GetUserByID", mock.Anything, int64(7)).Return(stored, nil)
	uc.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.ID == 7 && user.Email == "alice@example.com"
	})).Return(&entity.User{ID: 7, Name: "Alice", Email: "alice@example.com", PhoneNumber: "01234567890"}, nil)

	rec := doJSON(e, http.MethodPut, "/users/7",
		`{"id":7,"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Delete_Success(t *testing.T) {
	e, uc := newUserTestServer(t)

	stored := &entity.User{ID: 3, Name: "Alice", Email: "alice@example.com", PhoneNumber: "01234567890"}
	uc.On("GetUserByID", mock.Anything, int64(3)).Return(stored, nil)
	uc.On("DeleteUser", mock.Anything, stored).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/users/3", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserHandler_Delete_UnknownTargetIsNotFound(t *testing.T) {
	e, uc := newUserTestServer(t)

	uc.On("GetUserByID", mock.Anything, int64(3)).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "find user by id"))

	rec := doJSON(e, http.MethodDelete, "/users/3", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	uc.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}
