package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRestaurantUsecase is a testify double for usecase.RestaurantUsecase.
type MockRestaurantUsecase struct {
	mock.Mock
}

// NewMockRestaurantUsecase creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockRestaurantUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRestaurantUsecase {
	m := &MockRestaurantUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRestaurantUsecase) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantUsecase) GetRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantUsecase) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantUsecase) UpdateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantUsecase) DeleteRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}
