package validation

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRestaurant() *entity.Restaurant {
	return &entity.Restaurant{
		Name:        "Trattoria",
		PhoneNumber: "09876543210",
		Postcode:    "NE18QB",
	}
}

func TestRestaurantValidator_Validate_Passes(t *testing.T) {
	restaurants := mockRepo.NewMockRestaurantRepository(t)
	restaurants.On("FindByPhoneNumber", context.Background(), "09876543210").
		Return(nil, repository.ErrRestaurantNotFound)

	err := NewRestaurantValidator().Validate(context.Background(), validRestaurant(), restaurants)
	require.NoError(t, err)
}

func TestRestaurantValidator_Validate_CollectsEveryViolation(t *testing.T) {
	restaurant := &entity.Restaurant{
		Name:        "Caf3!",
		PhoneNumber: "12345",
		Postcode:    "NE1",
	}

	restaurants := mockRepo.NewMockRestaurantRepository(t)

	err := NewRestaurantValidator().Validate(context.Background(), restaurant, restaurants)
	require.Error(t, err)

	var violation *domainerrors.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domainerrors.KindFieldViolation, violation.Kind())
	assert.Equal(t, map[string]string{
		"name":        "Please use a name without numbers or specials",
		"phoneNumber": "Please use a valid phoneNumber",
		"postcode":    "Postcode size must be 6",
	}, violation.Reasons())
}

func TestRestaurantValidator_Validate_DuplicatePhoneNumberOnCreate(t *testing.T) {
	restaurant := validRestaurant()

	restaurants := mockRepo.NewMockRestaurantRepository(t)
	restaurants.On("FindByPhoneNumber", context.Background(), restaurant.PhoneNumber).
		Return(&entity.Restaurant{ID: 4, PhoneNumber: restaurant.PhoneNumber}, nil)

	err := NewRestaurantValidator().Validate(context.Background(), restaurant, restaurants)
	require.Error(t, err)

	var violation *domainerrors.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domainerrors.KindUniquenessViolation, violation.Kind())
	assert.Equal(t, map[string]string{
		"phoneNumber": domainerrors.MsgPhoneNumberAlreadyUsed,
	}, violation.Reasons())
}

func TestRestaurantValidator_Validate_UpdateKeepingOwnPhoneNumberIsNotAConflict(t *testing.T) {
	restaurant := validRestaurant()
	restaurant.ID = 4

	restaurants := mockRepo.NewMockRestaurantRepository(t)
	restaurants.On("FindByPhoneNumber", context.Background(), restaurant.PhoneNumber).
		Return(&entity.Restaurant{ID: 4, PhoneNumber: restaurant.PhoneNumber}, nil)
	restaurants.On("FindByID", context.Background(), int64(4)).
		Return(&entity.Restaurant{ID: 4, PhoneNumber: restaurant.PhoneNumber}, nil)

	err := NewRestaurantValidator().Validate(context.Background(), restaurant, restaurants)
	require.NoError(t, err)
}
