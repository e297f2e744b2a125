package models

import "time"

// Project is a saved generation brief together with its latest copy.
//
// A project is created the first time copy is generated for a new brief and
// mutated on every regeneration (Copy replaced, UpdatedAt bumped). UserID is
// a weak reference to the owning user: the stores filter by it on every read
// and force it on every write, but deleting a user does not cascade.
type Project struct {
	// ID is the opaque unique identifier of the project.
	ID string `json:"id"`

	// UserID is the id of the owning user. Always overwritten with the
	// current session user on save, whatever the caller supplied.
	UserID string `json:"userId"`

	// Name is the display name, taken from the product name at save time.
	Name string `json:"name"`

	// CreatedAt is set when the project is first persisted and never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt time.Time `json:"updatedAt"`

	// Input is the brief the copy was generated from.
	Input ProductInput `json:"input"`

	// Copy is the latest generated document, or nil when generation has not
	// succeeded yet.
	Copy *LandingPageCopy `json:"copy"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
