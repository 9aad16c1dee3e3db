package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MsgRestaurantIDMismatch is the fixed rejection message for an update whose
// body ID differs from the path ID.
const MsgRestaurantIDMismatch = "The Restaurant ID in the request body must match that of the Restaurant being updated"

// RestaurantHandler holds dependencies for restaurant-related handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /restaurants. An empty list is a 200, not a 404.
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.uc.ListRestaurants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, restaurants)
}

// GetByID handles GET /restaurants/:id.
func (h *RestaurantHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrRestaurantNotFound, "non-numeric restaurant id")
	}

	restaurant, err := h.uc.GetRestaurantByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, restaurant)
}

// Create handles POST /restaurants. Any client-supplied ID is discarded so
// the store always assigns the identifier.
func (h *RestaurantHandler) Create(c echo.Context) error {
	var restaurant entity.Restaurant
	if err := c.Bind(&restaurant); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("invalid restaurant payload")
	}

	restaurant.ID = 0

	created, err := h.uc.CreateRestaurant(c.Request().Context(), &restaurant)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusCreated, created)
}

// Update handles PUT /restaurants/:id. The body must carry the same ID as
// the path; a mismatch is a conflict and nothing is persisted.
func (h *RestaurantHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrRestaurantNotFound, "non-numeric restaurant id")
	}

	var restaurant entity.Restaurant
	if err := c.Bind(&restaurant); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("invalid restaurant payload")
	}

	if !restaurant.HasID() {
		return domainerrors.ErrInvalidPayload.WrapMessage("restaurant payload without an id")
	}

	if restaurant.ID != id {
		return domainerrors.NewIDMismatch(MsgRestaurantIDMismatch)
	}

	if _, err := h.uc.GetRestaurantByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateRestaurant(c.Request().Context(), &restaurant)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, updated)
}

// Delete handles DELETE /restaurants/:id. The target must exist; deletion
// then cascades to the restaurant's reviews.
func (h *RestaurantHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrRestaurantNotFound, "non-numeric restaurant id")
	}

	restaurant, err := h.uc.GetRestaurantByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRestaurant(c.Request().Context(), restaurant); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
