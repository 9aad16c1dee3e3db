package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// RestaurantUsecase defines the interface for restaurant-related business
// operations. Delete cascades to the restaurant's reviews.
type RestaurantUsecase interface {
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	GetRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurant *entity.Restaurant) error
}
