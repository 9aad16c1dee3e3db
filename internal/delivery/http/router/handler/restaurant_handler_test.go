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

func newRestaurantTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockRestaurantUsecase) {
	uc := mockUsecase.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/restaurants", h.List)
	e.GET("/restaurants/:id", h.GetByID)
	e.POST("/restaurants", h.Create)
	e.PUT("/restaurants/:id", h.Update)
	e.DELETE("/restaurants/:id", h.Delete)

	return e, uc
}

func TestRestaurantHandler_List_ReturnsRestaurants(t *testing.T) {
	e, uc := newRestaurantTestServer(t)

	uc.On("ListRestaurants", mock.Anything).Return([]*entity.Restaurant{
		{ID: 2, Name: "Trattoria", PhoneNumber: "09876543210", Postcode: "NE18QB"},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/restaurants", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"name":"Trattoria","phoneNumber":"09876543210","postcode":"NE18QB"}]`,
		rec.Body.String())
}

func TestRestaurantHandler_Create_DuplicatePhoneNumberRendersConflict(t *testing.T) {
	e, uc := newRestaurantTestServer(t)

	uc.On("CreateRestaurant", mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewUniquenessViolation("phoneNumber", domainerrors.MsgPhoneNumberAlreadyUsed))

	rec := doJSON(e, http.MethodPost, "/restaurants",
		`{"name":"Trattoria","phoneNumber":"09876543210","postcode":"NE18QB"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"reasons":{"phoneNumber":"That phone number is already used, please use a unique phone number"}}`,
		rec.Body.String())
}

func TestRestaurantHandler_Update_IDMismatchConflictsWithoutPersisting(t *testing.T) {
	e, uc := newRestaurantTestServer(t)

	rec := doJSON(e, http.MethodPut, "/restaurants/2",
		`{"id":3,"name":"Trattoria","phoneNumber":"09876543210","postcode":"NE18QB"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"reasons":{"id":"The Restaurant ID in the request body must match that of the Restaurant being updated"}}`,
		rec.Body.String())
	uc.AssertNotCalled(t, "UpdateRestaurant", mock.Anything, mock.Anything)
}

func TestRestaurantHandler_Delete_Success(t *testing.T) {
	e, uc := newRestaurantTestServer(t)

	stored := &entity.Restaurant{ID: 2, Name: "Trattoria", PhoneNumber: "09876543210", Postcode: "NE18QB"}
	uc.On("GetRestaurantByID", mock.Anything, int64(2)).Return(stored, nil)
	uc.On("DeleteRestaurant", mock.Anything, stored).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/restaurants/2", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
}
