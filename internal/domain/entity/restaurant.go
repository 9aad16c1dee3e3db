// Package entity contains the core business objects of the project.
package entity

// Restaurant is a reviewable establishment. The phone number is the
// restaurant's natural key: no two restaurants may share one.
type Restaurant struct {
	// ID is the database-generated identifier. Zero means "not yet persisted".
	ID int64 `json:"id"`
	// Name follows the same constraint as User.Name.
	Name string `json:"name" validate:"required,max=50,personname"`
	// PhoneNumber is a leading 0 followed by exactly ten digits, unique.
	PhoneNumber string `json:"phoneNumber" validate:"required,phonenumber"`
	// Postcode is exactly six characters.
	Postcode string `json:"postcode" validate:"required,len=6"`
}

// HasID reports whether the restaurant has been assigned a persistent identifier.
func (r *Restaurant) HasID() bool {
	return r.ID != 0
}
