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

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	txManager repository.TransactionManager
	validator *validation.RestaurantValidator
	logger    *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	txManager repository.TransactionManager,
	validator *validation.RestaurantValidator,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

// ListRestaurants returns every restaurant ordered by name.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RestaurantRepo().FindAllOrderedByName(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list restaurants")
		}
		restaurants = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

// GetRestaurantByID returns the restaurant with the given ID.
func (srv *restaurantService) GetRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurant *entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RestaurantRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "find restaurant by id")
			}

			return errors.Wrap(err, "failed to find restaurant by id")
		}
		restaurant = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return restaurant, nil
}

// CreateRestaurant validates the restaurant and persists it.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	srv.logger.Info("RestaurantService.CreateRestaurant", slog.String("name", restaurant.Name))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurants := repoFactory.RestaurantRepo()

		if err := srv.validator.Validate(ctx, restaurant, restaurants); err != nil {
			return err
		}

		return restaurants.Create(ctx, restaurant)
	})
	if err != nil {
		return nil, err
	}

	return restaurant, nil
}

// UpdateRestaurant validates the restaurant and overwrites the stored record.
func (srv *restaurantService) UpdateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (*entity.Restaurant, error) {
	srv.logger.Info("RestaurantService.UpdateRestaurant", slog.Int64("id", restaurant.ID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurants := repoFactory.RestaurantRepo()

		if err := srv.validator.Validate(ctx, restaurant, restaurants); err != nil {
			return err
		}

		return restaurants.Update(ctx, restaurant)
	})
	if err != nil {
		return nil, err
	}

	return restaurant, nil
}

// DeleteRestaurant removes the restaurant and every review referencing it,
// as a single all-or-nothing unit. A restaurant without an ID is a logged
// no-op.
func (srv *restaurantService) DeleteRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	if !restaurant.HasID() {
		srv.logger.Info("RestaurantService.DeleteRestaurant - no ID was found so can't delete")

		return nil
	}

	srv.logger.Info("RestaurantService.DeleteRestaurant", slog.Int64("id", restaurant.ID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviews := repoFactory.ReviewRepo()

		dependents, err := reviews.FindByRestaurantID(ctx, restaurant.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find dependent reviews")
		}

		for _, review := range dependents {
			if err := reviews.Delete(ctx, review); err != nil {
				return errors.Wrap(err, "failed to delete dependent review")
			}
		}

		return repoFactory.RestaurantRepo().Delete(ctx, restaurant)
	})
}
