package postgres

import (
	"context"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository backed by the given GORM handle.
// The handle may be a plain connection or a transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row model.UserModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userModelToEntity(&row), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row model.UserModel
	if err := r.db.WithContext(ctx).First(&row, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return userModelToEntity(&row), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := userEntityToModel(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "user is missing a required field")
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Propagate database-generated values back to the caller.
	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	row := userEntityToModel(user)
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   row.Username,
			"name":       row.Name,
			"password":   row.Password,
			"birth_date": row.BirthDate,
			"photo":      row.Photo,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}

		return errors.Wrap(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func userModelToEntity(row *model.UserModel) *entity.User {
	return &entity.User{
		ID:        row.ID,
		Username:  row.Username,
		Name:      row.Name,
		Password:  row.Password,
		BirthDate: row.BirthDate,
		Photo:     row.Photo,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func userEntityToModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Password:  user.Password,
		BirthDate: user.BirthDate,
		Photo:     user.Photo,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
