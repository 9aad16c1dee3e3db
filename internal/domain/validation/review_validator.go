package validation

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
)

// ReviewValidator checks a review's field constraints and that no other
// review already covers the same (user, restaurant) pair.
type ReviewValidator struct {
	fieldValidator
}

// NewReviewValidator is the constructor for ReviewValidator.
func NewReviewValidator() *ReviewValidator {
	return &ReviewValidator{fieldValidator: newFieldValidator()}
}

// Validate returns nil when the review may be persisted. It returns a
// field-violation error (all violated fields), a uniqueness violation on the
// review field, or a wrapped repository error.
func (v *ReviewValidator) Validate(ctx context.Context, review *entity.Review, reviews repository.ReviewRepository) error {
	if err := v.check(review); err != nil {
		return err
	}

	exists, err := v.reviewAlreadyExists(ctx, reviews, review.UserID(), review.RestaurantID(), review.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check review uniqueness")
	}
	if exists {
		return domainerrors.NewUniquenessViolation("review", domainerrors.MsgReviewAlreadyExists)
	}

	return nil
}

// reviewAlreadyExists scans the user's reviews for one referencing the same
// restaurant. A match whose ID equals the candidate's own ID is the record
// being updated and does not count as a conflict.
func (v *ReviewValidator) reviewAlreadyExists(ctx context.Context, reviews repository.ReviewRepository, userID, restaurantID, id int64) (bool, error) {
	existing, err := reviews.FindByUserID(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find reviews by user id")
	}

	for _, review := range existing {
		if review.RestaurantID() != restaurantID {
			continue
		}
		if id != 0 && review.ID == id {
			continue
		}

		return true, nil
	}

	return false, nil
}
