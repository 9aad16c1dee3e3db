package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockReviewUsecase is a testify double for usecase.ReviewUsecase.
type MockReviewUsecase struct {
	mock.Mock
}

// NewMockReviewUsecase creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockReviewUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewUsecase {
	m := &MockReviewUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewUsecase) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewUsecase) GetReviewByID(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUsecase) GetReviewsByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewUsecase) GetReviewsByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewUsecase) CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUsecase) UpdateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUsecase) DeleteReview(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}
