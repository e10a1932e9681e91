// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity of the store. A user registers with a
// unique username, authenticates with a password, and owns a profile used
// by the storefront (display name, photo).
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"` // Unique login identifier. Uniqueness is case-sensitive, matching the store collation.
	Name      string    `json:"name"`     // Display name shown in the storefront.
	Password  string    `json:"-"`        // Bcrypt hash of the password. Never serialized outward.
	BirthDate time.Time `json:"birthDate"`
	Photo     string    `json:"photo,omitempty"` // Profile photo reference (URL).
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOfLegalAge reports whether the user had completed at least 18 whole
// years at the reference time. A birthday falling exactly on the reference
// date counts as completed.
func (u *User) IsOfLegalAge(now time.Time) bool {
	if u.BirthDate.IsZero() {
		return false
	}

	years := now.Year() - u.BirthDate.Year()
	if now.Month() < u.BirthDate.Month() ||
		(now.Month() == u.BirthDate.Month() && now.Day() < u.BirthDate.Day()) {
		years--
	}

	return years >= 18
}

// WithoutPassword returns a copy of the user with the password hash cleared,
// safe to hand to the delivery layer.
func (u *User) WithoutPassword() *User {
	cloned := *u
	cloned.Password = ""

	return &cloned
}
