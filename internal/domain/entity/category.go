package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog. It is the referenced side of the
// product -> category foreign reference.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
