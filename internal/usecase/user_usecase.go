// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// UserUsecase defines the interface for user-related business operations.
// Create and Update validate before persisting; Delete cascades to the
// user's reviews.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, user *entity.User) error
}
