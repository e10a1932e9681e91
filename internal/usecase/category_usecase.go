package usecase

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput defines the data accepted when updating a category.
type UpdateCategoryInput struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// CategoryUsecase defines the interface for category catalog operations.
type CategoryUsecase interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
