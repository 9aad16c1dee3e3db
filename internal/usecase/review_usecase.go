package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// ReviewUsecase defines the interface for review-related business operations.
// Create and Update resolve the referenced user and restaurant so the
// returned review carries both in full.
type ReviewUsecase interface {
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	GetReviewByID(ctx context.Context, id int64) (*entity.Review, error)
	GetReviewsByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)
	GetReviewsByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error)
	CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error)
	UpdateReview(ctx context.Context, review *entity.Review) (*entity.Review, error)
	DeleteReview(ctx context.Context, review *entity.Review) error
}
