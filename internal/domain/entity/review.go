// Package entity contains the core business objects of the project.
package entity

// Review is an opinion a single user holds about a single restaurant.
// A review cannot exist without both ends of that relationship, and a
// given (user, restaurant) pair may hold at most one review.
type Review struct {
	// ID is the database-generated identifier. Zero means "not yet persisted".
	ID int64 `json:"id"`
	// User is the author. Serialized in full, persisted by foreign key.
	// structonly: the referenced user is validated by its own lifecycle,
	// not as part of the review.
	User *User `json:"user" validate:"required,structonly"`
	// Restaurant is the subject. Serialized in full, persisted by foreign key.
	Restaurant *Restaurant `json:"restaurant" validate:"required,structonly"`
	// Review is the free-text body, at most 300 characters.
	Review string `json:"review" validate:"required,max=300"`
	// Rating is an integer score from 0 to 5 inclusive.
	Rating int `json:"rating" validate:"min=0,max=5"`
}

// HasID reports whether the review has been assigned a persistent identifier.
func (r *Review) HasID() bool {
	return r.ID != 0
}

// UserID returns the author's ID, or zero when the author is not set.
func (r *Review) UserID() int64 {
	if r.User == nil {
		return 0
	}

	return r.User.ID
}

// RestaurantID returns the subject's ID, or zero when the subject is not set.
func (r *Review) RestaurantID() int64 {
	if r.Restaurant == nil {
		return 0
	}

	return r.Restaurant.ID
}
