// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
// Finders return reviews with their User and Restaurant associations loaded,
// since a review serializes both in full.
type ReviewRepository interface {
	// FindAllOrderedByID retrieves every review, ordered by ID ascending.
	FindAllOrderedByID(ctx context.Context) ([]*entity.Review, error)

	// FindByID retrieves a single review by its unique ID.
	// Returns ErrReviewNotFound when no such review exists.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindByUserID retrieves all reviews written by the given user.
	// An empty result is not an error.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)

	// FindByRestaurantID retrieves all reviews about the given restaurant.
	// An empty result is not an error.
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error)

	// Create persists a new review entity and fills in the generated ID.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review entity in the storage.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review. A review without an ID is a logged no-op,
	// not an error.
	Delete(ctx context.Context, review *entity.Review) error
}
