// Package model contains the GORM persistence models. They mirror the domain
// entities but carry storage concerns: column tags, indexes and foreign keys.
// Mapping between the two worlds lives next to each repository.
package model

// UserModel is the storage shape of entity.User.
type UserModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:50;not null"`
	Email       string `gorm:"size:255;not null;uniqueIndex"`
	PhoneNumber string `gorm:"size:11;not null"`
}

// TableName overrides the table name used by GORM.
func (UserModel) TableName() string {
	return "users"
}

// RestaurantModel is the storage shape of entity.Restaurant.
type RestaurantModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:50;not null"`
	PhoneNumber string `gorm:"size:11;not null;uniqueIndex"`
	Postcode    string `gorm:"size:6;not null"`
}

// TableName overrides the table name used by GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ReviewModel is the storage shape of entity.Review. The composite unique
// index backs the one-review-per-(user,restaurant) invariant at store level;
// the validators keep the documented two-step check as the primary contract.
type ReviewModel struct {
	ID           int64            `gorm:"primaryKey;autoIncrement"`
	UserID       int64            `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant"`
	RestaurantID int64            `gorm:"not null;uniqueIndex:idx_reviews_user_restaurant"`
	User         *UserModel       `gorm:"foreignKey:UserID"`
	Restaurant   *RestaurantModel `gorm:"foreignKey:RestaurantID"`
	Review       string           `gorm:"size:300;not null"`
	Rating       int              `gorm:"not null"`
}

// TableName overrides the table name used by GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
