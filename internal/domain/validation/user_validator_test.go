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

func validUser() *entity.User {
	return &entity.User{
		Name:        "Alice",
		Email:       "alice@example.com",
		PhoneNumber: "01234567890",
	}
}

func TestUserValidator_Validate_Passes(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	users.On("FindByEmail", context.Background(), "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := NewUserValidator().Validate(context.Background(), validUser(), users)
	require.NoError(t, err)
}

func TestUserValidator_Validate_CollectsEveryViolation(t *testing.T) {
	user := &entity.User{
		Name:        "Al1ce",
		Email:       "not-an-email",
		PhoneNumber: "1234",
	}

	// No repository expectations: the uniqueness lookup must not run when
	// field checks fail.
	users := mockRepo.NewMockUserRepository(t)

	err := NewUserValidator().Validate(context.Background(), user, users)
	require.Error(t, err)

	var violation *domainerrors.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domainerrors.KindFieldViolation, violation.Kind())
	assert.Equal(t, map[string]string{
		"name":        "Please use a name without numbers or specials",
		"email":       "The email address must be in the format of name@domain.com",
		"phoneNumber": "Please use a valid phoneNumber",
	}, violation.Reasons())
}

func TestUserValidator_Validate_EmptyFieldsAreRequired(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)

	err := NewUserValidator().Validate(context.Background(), &entity.User{}, users)
	require.Error(t, err)

	var violation *domainerrors.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, map[string]string{
		"name":        "must not be null",
		"email":       "must not be null",
		"phoneNumber": "must not be null",
	}, violation.Reasons())
}

func TestUserValidator_Validate_DuplicateEmailOnCreate(t *testing.T) {
	user := validUser()

	users := mockRepo.NewMockUserRepository(t)
	users.On("FindByEmail", context.Background(), user.Email).
		Return(&entity.User{ID: 7, Email: user.Email}, nil)

	err := NewUserValidator().Validate(context.Background(), user, users)
	require.Error(t, err)

	var violation *domainerrors.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domainerrors.KindUniquenessViolation, violation.Kind())
	assert.Equal(t, map[string]string{
		"email": domainerrors.MsgEmailAlreadyUsed,
	}, violation.Reasons())
}

func TestUserValidator_Validate_UpdateKeepingOwnEmailIsNotAConflict(t *testing.T) {
	user := validUser()
	user.ID = 7

	users := mockRepo.NewMockUserRepository(t)
	users.On("FindByEmail", context.Background(), user.Email).
		Return(&entity.User{ID: 7, Email: user.Email}, nil)
	users.On("FindByID", context.Background(), int64(7)).
		Return(&entity.User{ID: 7, Email: user.Email}, nil)

	err := NewUserValidator().Validate(context.Background(), user, users)
	require.NoError(t, err)
}

func TestUserValidator_Validate_UpdateTakingAnotherUsersEmailConflicts(t *testing.T) {
	user := validUser()
	user.ID = 7

	users := mockRepo.NewMockUserRepository(t)
	users.On("FindByEmail", context.Background(), user.Email).
		Return(&entity.User{ID: 9, Email: user.Email}, nil)
	users.On("FindByID", context.Background(), int64(7)).
		Return(&entity.User{ID: 7, Email: "old@example.com"}, nil)

	err := NewUserValidator().Validate(context.Background(), user, users)
	require.Error(t, err)

	var violation *domainerrors.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, domainerrors.KindUniquenessViolation, violation.Kind())
}
