// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/validation"
	"bistro/internal/errors"
	"bistro/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	validator *validation.UserValidator
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	validator *validation.UserValidator,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// ListUsers returns every user ordered by name.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindAllOrderedByName(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUserByID returns the user with the given ID.
func (srv *userService) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "find user by id")
			}

			return errors.Wrap(err, "failed to find user by id")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail returns the user with the given email address.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "find user by email")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUser validates the user and persists it. Any validation failure
// aborts before the insert is attempted.
func (srv *userService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	srv.logger.Info("UserService.CreateUser", slog.String("name", user.Name))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.UserRepo()

		if err := srv.validator.Validate(ctx, user, users); err != nil {
			return err
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser validates the user and overwrites the stored record.
func (srv *userService) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	srv.logger.Info("UserService.UpdateUser", slog.Int64("id", user.ID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.UserRepo()

		if err := srv.validator.Validate(ctx, user, users); err != nil {
			return err
		}

		return users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user and every review the user has written, as a
// single all-or-nothing unit. A user without an ID is a logged no-op.
func (srv *userService) DeleteUser(ctx context.Context, user *entity.User) error {
	if !user.HasID() {
		srv.logger.Info("UserService.DeleteUser - no ID was found so can't delete")

		return nil
	}

	srv.logger.Info("UserService.DeleteUser", slog.Int64("id", user.ID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviews := repoFactory.ReviewRepo()

		dependents, err := reviews.FindByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find dependent reviews")
		}

		for _, review := range dependents {
			if err := reviews.Delete(ctx, review); err != nil {
				return errors.Wrap(err, "failed to delete dependent review")
			}
		}

		return repoFactory.UserRepo().Delete(ctx, user)
	})
}
