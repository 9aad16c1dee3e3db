// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a registered reviewer. The email address is the user's natural
// key: no two users may share one.
type User struct {
	// ID is the database-generated identifier. Zero means "not yet persisted".
	ID int64 `json:"id"`
	// Name is the display name, 1-50 chars, letters/hyphen/apostrophe only.
	Name string `json:"name" validate:"required,max=50,personname"`
	// Email is the user's primary contact address, unique across all users.
	Email string `json:"email" validate:"required,email"`
	// PhoneNumber is a leading 0 followed by exactly ten digits.
	PhoneNumber string `json:"phoneNumber" validate:"required,phonenumber"`
}

// HasID reports whether the user has been assigned a persistent identifier.
func (u *User) HasID() bool {
	return u.ID != 0
}
