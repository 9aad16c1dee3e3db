package validation

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
)

// UserValidator checks a user's field constraints and the uniqueness of its
// email address.
type UserValidator struct {
	fieldValidator
}

// NewUserValidator is the constructor for UserValidator.
func NewUserValidator() *UserValidator {
	return &UserValidator{fieldValidator: newFieldValidator()}
}

// Validate returns nil when the user may be persisted. It returns a
// field-violation error (all violated fields), a uniqueness violation on the
// email field, or a wrapped repository error.
func (v *UserValidator) Validate(ctx context.Context, user *entity.User, users repository.UserRepository) error {
	if err := v.check(user); err != nil {
		return err
	}

	exists, err := v.emailAlreadyExists(ctx, users, user.Email, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if exists {
		return domainerrors.NewUniquenessViolation("email", domainerrors.MsgEmailAlreadyUsed)
	}

	return nil
}

// emailAlreadyExists looks the candidate up by email; when a record is found
// and the validated user already has an ID (update case), the record is
// re-fetched by that ID and treated as no-conflict if its email still equals
// the candidate's, i.e. the "conflict" is the record itself.
func (v *UserValidator) emailAlreadyExists(ctx context.Context, users repository.UserRepository, email string, id int64) (bool, error) {
	candidate, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find user by email")
	}

	if candidate != nil && id != 0 {
		withID, err := users.FindByID(ctx, id)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.Wrap(err, "failed to find user by id")
		}
		if withID != nil && withID.Email == email {
			candidate = nil
		}
	}

	return candidate != nil, nil
}
