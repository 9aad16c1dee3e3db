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

// MsgReviewIDMismatch is the fixed rejection message for an update whose
// body ID differs from the path ID.
const MsgReviewIDMismatch = "The Review ID in the request body must match that of the Review being updated"

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /reviews. An empty list is a 200, not a 404.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.uc.ListReviews(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, reviews)
}

// GetByID handles GET /reviews/:id.
func (h *ReviewHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "non-numeric review id")
	}

	review, err := h.uc.GetReviewByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, review)
}

// GetByUserID handles GET /reviews/user/:userId. A user with no reviews is
// a 404, matching the by-secondary-key lookup contract.
func (h *ReviewHandler) GetByUserID(c echo.Context) error {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "non-numeric user id")
	}

	reviews, err := h.uc.GetReviewsByUserID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(reviews) == 0 {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "no reviews for user")
	}

	return response.Record(c, http.StatusOK, reviews)
}

// GetByRestaurantID handles GET /reviews/restaurant/:restaurantId. A
// restaurant with no reviews is a 404.
func (h *ReviewHandler) GetByRestaurantID(c echo.Context) error {
	restaurantID, err := parseID(c.Param("restaurantId"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "non-numeric restaurant id")
	}

	reviews, err := h.uc.GetReviewsByRestaurantID(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(reviews) == 0 {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "no reviews for restaurant")
	}

	return response.Record(c, http.StatusOK, reviews)
}

// Create handles POST /reviews. Any client-supplied ID is discarded; the
// referenced user and restaurant are resolved before persisting, so the
// response carries both in full.
func (h *ReviewHandler) Create(c echo.Context) error {
	var review entity.Review
	if err := c.Bind(&review); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("invalid review payload")
	}

	review.ID = 0

	created, err := h.uc.CreateReview(c.Request().Context(), &review)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusCreated, created)
}

// Update handles PUT /reviews/:id. The body must carry the same ID as the
// path; a mismatch is a conflict and nothing is persisted.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "non-numeric review id")
	}

	var review entity.Review
	if err := c.Bind(&review); err != nil {
		return domainerrors.ErrInvalidPayload.WrapMessage("invalid review payload")
	}

	if !review.HasID() {
		return domainerrors.ErrInvalidPayload.WrapMessage("review payload without an id")
	}

	if review.ID != id {
		return domainerrors.NewIDMismatch(MsgReviewIDMismatch)
	}

	if _, err := h.uc.GetReviewByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateReview(c.Request().Context(), &review)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Record(c, http.StatusOK, updated)
}

// Delete handles DELETE /reviews/:id. The target must exist. Deleting a
// review has no dependents, so no cascade is involved.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "non-numeric review id")
	}

	review, err := h.uc.GetReviewByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteReview(c.Request().Context(), review); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
