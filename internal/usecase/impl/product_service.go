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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Create persists a new product after guarding the category reference. The
// category is re-read inside the same transaction so the response carries the
// full category, not just its ID.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	var created *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		if err := ensureExists(ctx, input.CategoryID, categoryRepo.ExistsByID,
			domainerrors.ErrCategoryNotFound.WrapMessage("referenced category does not exist")); err != nil {
			return err
		}

		product := &entity.Product{
			Name:        input.Name,
			Description: input.Description,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Photo:       input.Photo,
			CategoryID:  input.CategoryID,
		}

		if err := productRepo.Create(ctx, product); err != nil {
			// Category deleted between the guard and the insert; the foreign
			// key reports it.
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("referenced category does not exist")
			}

			return errors.Wrap(err, "failed to create product")
		}

		category, err := categoryRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			return errors.Wrap(err, "failed to load category for created product")
		}
		product.Category = category

		created = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute product creation transaction", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", created.ID))

	return created, nil
}

func (srv *productService) Update(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		if err := ensureExists(ctx, input.ID, productRepo.ExistsByID,
			domainerrors.ErrProductNotFound.WrapMessage("product to update does not exist")); err != nil {
			return err
		}

		if err := ensureExists(ctx, input.CategoryID, categoryRepo.ExistsByID,
			domainerrors.ErrCategoryNotFoundOnUpdate.WrapMessage("referenced category does not exist")); err != nil {
			return err
		}

		product := &entity.Product{
			ID:          input.ID,
			Name:        input.Name,
			Description: input.Description,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Photo:       input.Photo,
			CategoryID:  input.CategoryID,
		}

		if err := productRepo.Update(ctx, product); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFoundOnUpdate.WrapMessage("referenced category does not exist")
			}

			return errors.Wrap(err, "failed to update product")
		}

		reloaded, err := productRepo.FindByID(ctx, input.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload updated product")
		}
		updated = reloaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute product update transaction", slog.Any("productID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return updated, nil
}

func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product to delete does not exist")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", id))

	return nil
}
