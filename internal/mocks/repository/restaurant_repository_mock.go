package repository

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a testify double for repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

// NewMockRestaurantRepository creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRestaurantRepository) FindAllOrderedByName(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}
