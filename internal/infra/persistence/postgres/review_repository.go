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

// reviewRepository implements the domain's ReviewRepository interface using GORM.
// Finders preload the User and Restaurant associations, since a review
// serializes both in full.
type reviewRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{db: db, logger: logger}
}

// FindAllOrderedByID retrieves every review, ordered by ID ascending.
func (repo *reviewRepository) FindAllOrderedByID(ctx context.Context) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant").
		Order("id ASC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomainSlice(reviewMs), nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant").
		First(&reviewM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByUserID retrieves all reviews written by the given user.
func (repo *reviewRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by user id")
	}

	return toReviewDomainSlice(reviewMs), nil
}

// FindByRestaurantID retrieves all reviews about the given restaurant.
func (repo *reviewRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant").
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by restaurant id")
	}

	return toReviewDomainSlice(reviewMs), nil
}

// Create persists a new review entity and fills in the generated ID.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewUniquenessViolation("review", domainerrors.MsgReviewAlreadyExists)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "review references a missing user or restaurant")
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// Update modifies an existing review record in place.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Save(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewUniquenessViolation("review", domainerrors.MsgReviewAlreadyExists)
		}

		return errors.Wrap(err, "failed to update review")
	}

	return nil
}

// Delete removes the review record. A review without an ID is a logged no-op.
func (repo *reviewRepository) Delete(ctx context.Context, review *entity.Review) error {
	if !review.HasID() {
		repo.logger.Info("reviewRepository.Delete - no ID was found so can't delete")

		return nil
	}

	if err := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, review.ID).Error; err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:     data.ID,
		User:   toUserDomain(data.User),
		Rating: data.Rating,
		Review: data.Review,
	}
	review.Restaurant = toRestaurantDomain(data.Restaurant)

	// The preloads normally populate both associations. Fall back to bare
	// references when a finder was called without them.
	if review.User == nil {
		review.User = &entity.User{ID: data.UserID}
	}
	if review.Restaurant == nil {
		review.Restaurant = &entity.Restaurant{ID: data.RestaurantID}
	}

	return review
}

// toReviewDomainSlice maps a slice of review models to domain entities.
func toReviewDomainSlice(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
// Only the foreign keys are written; the associated rows belong to their own
// repositories.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		UserID:       data.UserID(),
		RestaurantID: data.RestaurantID(),
		Review:       data.Review,
		Rating:       data.Rating,
	}
}
