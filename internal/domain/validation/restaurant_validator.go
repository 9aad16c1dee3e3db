package validation

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
)

// RestaurantValidator checks a restaurant's field constraints and the
// uniqueness of its phone number.
type RestaurantValidator struct {
	fieldValidator
}

// NewRestaurantValidator is the constructor for RestaurantValidator.
func NewRestaurantValidator() *RestaurantValidator {
	return &RestaurantValidator{fieldValidator: newFieldValidator()}
}

// Validate returns nil when the restaurant may be persisted. It returns a
// field-violation error (all violated fields), a uniqueness violation on the
// phoneNumber field, or a wrapped repository error.
func (v *RestaurantValidator) Validate(ctx context.Context, restaurant *entity.Restaurant, restaurants repository.RestaurantRepository) error {
	if err := v.check(restaurant); err != nil {
		return err
	}

	exists, err := v.phoneNumberAlreadyExists(ctx, restaurants, restaurant.PhoneNumber, restaurant.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check phone number uniqueness")
	}
	if exists {
		return domainerrors.NewUniquenessViolation("phoneNumber", domainerrors.MsgPhoneNumberAlreadyUsed)
	}

	return nil
}

// phoneNumberAlreadyExists mirrors the email check: look the candidate up by
// phone number, then rule out "the conflict is the record itself" on update
// by re-fetching the record by its own ID.
func (v *RestaurantValidator) phoneNumberAlreadyExists(ctx context.Context, restaurants repository.RestaurantRepository, phoneNumber string, id int64) (bool, error) {
	candidate, err := restaurants.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find restaurant by phone number")
	}

	if candidate != nil && id != 0 {
		withID, err := restaurants.FindByID(ctx, id)
		if err != nil && !errors.Is(err, repository.ErrRestaurantNotFound) {
			return false, errors.Wrap(err, "failed to find restaurant by id")
		}
		if withID != nil && withID.PhoneNumber == phoneNumber {
			candidate = nil
		}
	}

	return candidate != nil, nil
}
