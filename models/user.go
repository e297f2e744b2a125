package models

// User represents an account entity used for authentication.
// Credentials follow the mock contract of the product: the password is kept
// as the user typed it (trimmed, unhashed) and must never leave the trusted
// boundary of the stores.
type User struct {
	// ID is the opaque unique identifier of the user, assigned at
	// registration time. Ownership of projects is expressed through it.
	ID string `json:"id"`

	// Username is the unique login identifier. Stored with its original
	// casing for display; uniqueness and lookups are case-insensitive.
	Username string `json:"username"`

	// Password is the plaintext mock credential. It is compared verbatim
	// on login and is never exposed in API responses.
	Password string `json:"password,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user safe for API responses,
// with the credential field cleared.
func (u User) Public() User {
	u.Password = ""
	return u
}
