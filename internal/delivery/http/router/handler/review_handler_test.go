package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	mockUsecase "bistro/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockReviewUsecase) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/reviews", h.List)
	e.GET("/reviews/:id", h.GetByID)
	e.GET("/reviews/user/:userId", h.GetByUserID)
	e.GET("/reviews/restaurant/:restaurantId", h.GetByRestaurantID)
	e.POST("/reviews", h.Create)
	e.PUT("/reviews/:id", h.Update)
	e.DELETE("/reviews/:id", h.Delete)

	return e, uc
}

func sampleReview() *entity.Review {
	return &entity.Review{
		ID:         11,
		User:       &entity.User{ID: 1, Name: "Alice", Email: "alice@example.com", PhoneNumber: "01234567890"},
		Restaurant: &entity.Restaurant{ID: 2, Name: "Trattoria", PhoneNumber: "09876543210", Postcode: "NE18QB"},
		Review:     "Great pasta.",
		Rating:     5,
	}
}

func TestReviewHandler_GetByID_SerializesFullReferences(t *testing.T) {
	e, uc := newReviewTestServer(t)

	uc.On("GetReviewByID", mock.Anything, int64(11)).Return(sampleReview(), nil)

	rec := doJSON(e, http.MethodGet, "/reviews/11", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id": 11,
		"user": {"id":1,"name":"Alice","email":"alice@example.com","phoneNumber":"01234567890"},
		"restaurant": {"id":2,"name":"Trattoria","phoneNumber":"09876543210","postcode":"NE18QB"},
		"review": "Great pasta.",
		"rating": 5
	}`, rec.Body.String())
}

func TestReviewHandler_GetByUserID_EmptyIsNotFound(t *testing.T) {
	e, uc := newReviewTestServer(t)

	uc.On("GetReviewsByUserID", mock.Anything, int64(1)).Return([]*entity.Review{}, nil)

	rec := doJSON(e, http.MethodGet, "/reviews/user/1", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHandler_GetByUserID_ReturnsReviews(t *testing.T) {
	e, uc := newReviewTestServer(t)

	uc.On("GetReviewsByUserID", mock.Anything, int64(1)).
		Return([]*entity.Review{sampleReview()}, nil)

	rec := doJSON(e, http.MethodGet, "/reviews/user/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewHandler_GetByRestaurantID_EmptyIsNotFound(t *testing.T) {
	e, uc := newReviewTestServer(t)

	uc.On("GetReviewsByRestaurantID", mock.Anything, int64(2)).Return([]*entity.Review{}, nil)

	rec := doJSON(e, http.MethodGet, "/reviews/restaurant/2", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHandler_Create_DuplicatePairRendersConflict(t *testing.T) {
	e, uc := newReviewTestServer(t)

	uc.On("CreateReview", mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewUniquenessViolation("review", domainerrors.MsgReviewAlreadyExists))

	rec := doJSON(e, http.MethodPost, "/reviews",
		`{"user":{"id":1},"restaurant":{"id":2},"review":"Again.","rating":2}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"reasons":{"review":"A review for this user and restaurant already exists"}}`,
		rec.Body.String())
}

func TestReviewHandler_Update_IDMismatchConflictsWithoutPersisting(t *testing.T) {
	e, uc := newReviewTestServer(t)

	rec := doJSON(e, http.MethodPut, "/reviews/11",
		`{"id":12,"user":{"id":1},"restaurant":{"id":2},"review":"Edited.","rating":3}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"reasons":{"id":"The Review ID in the request body must match that of the Review being updated"}}`,
		rec.Body.String())
	uc.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
}

func TestReviewHandler_Delete_Success(t *testing.T) {
	e, uc := newReviewTestServer(t)

	review := sampleReview()
	uc.On("GetReviewByID", mock.Anything, int64(11)).Return(review, nil)
	uc.On("DeleteReview", mock.Anything, review).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/reviews/11", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
}
