// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username  string
	Password  string
	Name      string
	BirthDate time.Time
	Photo     string
}

// UpdateUserInput defines the data accepted when updating an existing user.
// BirthDate is carried for API symmetry but never overwrites the stored value.
type UpdateUserInput struct {
	ID        uuid.UUID
	Username  string
	Password  string
	Name      string
	BirthDate time.Time
	Photo     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// UserOutput returns a user's information with the password hash stripped.
type UserOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated user's public data plus a session token.
// Token carries the "Bearer " scheme prefix ready for the Authorization header.
type LoginOutput struct {
	ID       uuid.UUID
	Username string
	Name     string
	Photo    string
	Token    string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)
	Update(ctx context.Context, input *UpdateUserInput) (*UserOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Profile(ctx context.Context, username string) (*UserOutput, error)
}
