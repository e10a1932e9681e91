package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamestore/internal/delivery/context"
	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryMissing.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return category, nil
}

func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Debug("Category created", slog.Any("categoryID", category.ID))

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryMissing.WrapMessage("category to update does not exist")
			}

			return errors.Wrap(err, "failed to load category for update")
		}

		category.Name = input.Name
		category.Description = input.Description

		if err := categoryRepo.Update(ctx, category); err != nil {
			return errors.Wrap(err, "failed to update category")
		}

		updated = category

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute category update transaction", slog.Any("categoryID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category update transaction")
	}

	return updated, nil
}

func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return domainerrors.ErrCategoryMissing.WrapMessage("category to delete does not exist")
		case errors.Is(err, repository.ErrCategoryReferenced):
			return domainerrors.ErrCategoryInUse.WrapMessage("category still has products attached")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Debug("Category deleted", slog.Any("categoryID", id))

	return nil
}
