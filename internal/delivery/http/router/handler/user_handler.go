// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MsgUserIDMismatch is the fixed rejection message for an update whose body
// ID differs from the path ID.
const MsgUserIDMismatch = "The User ID in the request body must match that of the User being updated"

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /users. An empty list is a 200, not a 404.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, users)
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrUserNotFound, "non-numeric user id")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, user)
}

// GetByEmail handles GET /users/email/:email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, user)
}

// Create handles POST /users. Any client-supplied ID is discarded so the
// store always assigns the identifier.
func (h *UserHandler) Create(c echo.Context) error {
	var user entity.User
	if err := c.Bind(&user); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("invalid user payload")
	}

	user.ID = 0

	created, err := h.uc.CreateUser(c.Request().Context(), &user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusCreated, created)
}

// Update handles PUT /users/:id. The body must carry the same ID as the
// path; a mismatch is a conflict and nothing is persisted.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrUserNotFound, "non-numeric user id")
	}

	var user entity.User
	if err := c.Bind(&user); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("invalid user payload")
	}

	if !user.HasID() {
		return domainerrors.ErrInvalidPayload.WrapMessage("user payload without an id")
	}

	if user.ID != id {
		return domainerrors.NewIDMismatch(MsgUserIDMismatch)
	}

	if _, err := h.uc.GetUserByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateUser(c.Request().Context(), &user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, updated)
}

// Delete handles DELETE /users/:id. The target must exist; deletion then
// cascades to the user's reviews.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrUserNotFound, "non-numeric user id")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), user); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Record(c, http.StatusOK, map[string]string{"status": "ok"})
}

// parseID converts a path parameter into a numeric identifier.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
