// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrRestaurantNotFound is a domain-specific error returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// FindAllOrderedByName retrieves every restaurant, ordered by name ascending.
	FindAllOrderedByName(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID retrieves a single restaurant by its unique ID.
	// Returns ErrRestaurantNotFound when no such restaurant exists.
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// FindByPhoneNumber retrieves a single restaurant by its phone number.
	// Returns ErrRestaurantNotFound when no such restaurant exists.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error)

	// Create persists a new restaurant entity and fills in the generated ID.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant entity in the storage.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes the restaurant. A restaurant without an ID is a logged
	// no-op, not an error.
	Delete(ctx context.Context, restaurant *entity.Restaurant) error
}
