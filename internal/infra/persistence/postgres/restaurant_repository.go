package postgres

import (
	"context"
	"log/slog"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the domain's RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB, logger *slog.Logger) repository.RestaurantRepository {
	return &restaurantRepository{db: db, logger: logger}
}

// FindAllOrderedByName retrieves every restaurant, ordered by name ascending.
func (repo *restaurantRepository) FindAllOrderedByName(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantMs []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&restaurantMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantMs))
	for _, restaurantM := range restaurantMs {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindByID retrieves a single restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).First(&restaurantM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByPhoneNumber retrieves a single restaurant by its phone number.
func (repo *restaurantRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by phone number")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// Create persists a new restaurant entity and fills in the generated ID.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewUniquenessViolation("phoneNumber", domainerrors.MsgPhoneNumberAlreadyUsed)
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required restaurant information")
		}

		return errors.Wrap(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID

	return nil
}

// Update modifies an existing restaurant record in place.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Save(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewUniquenessViolation("phoneNumber", domainerrors.MsgPhoneNumberAlreadyUsed)
		}

		return errors.Wrap(err, "failed to update restaurant")
	}

	return nil
}

// Delete removes the restaurant record. A restaurant without an ID is a
// logged no-op.
func (repo *restaurantRepository) Delete(ctx context.Context, restaurant *entity.Restaurant) error {
	if !restaurant.HasID() {
		repo.logger.Info("restaurantRepository.Delete - no ID was found so can't delete")

		return nil
	}

	if err := repo.db.WithContext(ctx).Delete(&model.RestaurantModel{}, restaurant.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete restaurant")
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Postcode:    data.Postcode,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Postcode:    data.Postcode,
	}
}
