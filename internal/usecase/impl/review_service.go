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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	validator *validation.ReviewValidator
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	validator *validation.ReviewValidator,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// ListReviews returns every review ordered by ID.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindAllOrderedByID(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// GetReviewByID returns the review with the given ID.
func (srv *reviewService) GetReviewByID(ctx context.Context, id int64) (*entity.Review, error) {
	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "find review by id")
			}

			return errors.Wrap(err, "failed to find review by id")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetReviewsByUserID returns all reviews written by the given user.
func (srv *reviewService) GetReviewsByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find reviews by user id")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// GetReviewsByRestaurantID returns all reviews about the given restaurant.
func (srv *reviewService) GetReviewsByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindByRestaurantID(ctx, restaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to find reviews by restaurant id")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// CreateReview validates the review and persists it. The referenced user and
// restaurant are resolved inside the same transaction so the returned review
// carries both in full and a dangling reference is caught before the insert.
func (srv *reviewService) CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	srv.logger.Info("ReviewService.CreateReview",
		slog.Int64("userID", review.UserID()),
		slog.Int64("restaurantID", review.RestaurantID()),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviews := repoFactory.ReviewRepo()

		if err := srv.validator.Validate(ctx, review, reviews); err != nil {
			return err
		}

		if err := srv.resolveReferences(ctx, review, repoFactory); err != nil {
			return err
		}

		return reviews.Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// UpdateReview validates the review and overwrites the stored record.
func (srv *reviewService) UpdateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	srv.logger.Info("ReviewService.UpdateReview", slog.Int64("id", review.ID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviews := repoFactory.ReviewRepo()

		if err := srv.validator.Validate(ctx, review, reviews); err != nil {
			return err
		}

		if err := srv.resolveReferences(ctx, review, repoFactory); err != nil {
			return err
		}

		return reviews.Update(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a single review. No cascade applies. A review without
// an ID is a logged no-op.
func (srv *reviewService) DeleteReview(ctx context.Context, review *entity.Review) error {
	if !review.HasID() {
		srv.logger.Info("ReviewService.DeleteReview - no ID was found so can't delete")

		return nil
	}

	srv.logger.Info("ReviewService.DeleteReview", slog.Int64("id", review.ID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ReviewRepo().Delete(ctx, review)
	})
}

// resolveReferences replaces the review's user and restaurant stubs with the
// stored records they point at.
func (srv *reviewService) resolveReferences(ctx context.Context, review *entity.Review, repoFactory repository.RepositoryFactory) error {
	user, err := repoFactory.UserRepo().FindByID(ctx, review.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "review references unknown user")
		}

		return errors.Wrap(err, "failed to resolve review user")
	}

	restaurant, err := repoFactory.RestaurantRepo().FindByID(ctx, review.RestaurantID())
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return errors.Wrap(domainerrors.ErrRestaurantNotFound, "review references unknown restaurant")
		}

		return errors.Wrap(err, "failed to resolve review restaurant")
	}

	review.User = user
	review.Restaurant = restaurant

	return nil
}
