package usecase

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Quantity    int
	Price       float64
	Photo       string
	CategoryID  uuid.UUID
}

// UpdateProductInput defines the data accepted when updating a product.
type UpdateProductInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Quantity    int
	Price       float64
	Photo       string
	CategoryID  uuid.UUID
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
