package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Every product references exactly one Category;
// a write carrying a CategoryID that does not exist in the store must be
// rejected before persistence.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Photo       string    `json:"photo,omitempty"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Category    *Category `json:"category,omitempty"` // Reattached in full on create so the persisted graph is consistent.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
