package impl

import (
	"context"
	"testing"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	service      usecase.ProductUsecase
	productRepo  *mockProductRepository
	categoryRepo *mockCategoryRepository
}

func newProductServiceFixture() *productServiceFixture {
	productRepo := new(mockProductRepository)
	categoryRepo := new(mockCategoryRepository)
	factory := &stubRepositoryFactory{products: productRepo, categories: categoryRepo}

	service := NewProductService(ProductServiceParams{
		TxManager:   &stubTransactionManager{factory: factory},
		ProductRepo: productRepo,
		Logger:      newTestLogger(),
	})

	return &productServiceFixture{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	categoryID := uuid.New()
	productID := uuid.New()
	category := &entity.Category{ID: categoryID, Name: "Consoles"}

	fixture.categoryRepo.On("ExistsByID", mock.Anything, categoryID).Return(true, nil)
	fixture.categoryRepo.On("FindByID", mock.Anything, categoryID).Return(category, nil)
	fixture.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*entity.Product)
			created.ID = productID
		}).
		Return(nil)

	product, err := fixture.service.Create(context.Background(), &usecase.CreateProductInput{
		Name:       "Mega Console X",
		Quantity:   3,
		Price:      2499.90,
		CategoryID: categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	require.NotNil(t, product.Category, "response must carry the full category, not just its ID")
	assert.Equal(t, "Consoles", product.Category.Name)
}

func TestProductService_Create_DanglingCategoryRejected(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	categoryID := uuid.New()

	fixture.categoryRepo.On("ExistsByID", mock.Anything, categoryID).Return(false, nil)

	product, err := fixture.service.Create(context.Background(), &usecase.CreateProductInput{
		Name:       "Orphan Product",
		CategoryID: categoryID,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	fixture.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Create_CategoryDeletedMidFlight(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	categoryID := uuid.New()

	fixture.categoryRepo.On("ExistsByID", mock.Anything, categoryID).Return(true, nil)
	fixture.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrCategoryNotFound)

	_, err := fixture.service.Create(context.Background(), &usecase.CreateProductInput{
		Name:       "Racing Game",
		CategoryID: categoryID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_Update_ProductNotFound(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	productID := uuid.New()

	fixture.productRepo.On("ExistsByID", mock.Anything, productID).Return(false, nil)

	_, err := fixture.service.Update(context.Background(), &usecase.UpdateProductInput{
		ID:         productID,
		CategoryID: uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fixture.categoryRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
}

func TestProductService_Update_DanglingCategoryRejected(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	productID := uuid.New()
	categoryID := uuid.New()

	fixture.productRepo.On("ExistsByID", mock.Anything, productID).Return(true, nil)
	fixture.categoryRepo.On("ExistsByID", mock.Anything, categoryID).Return(false, nil)

	_, err := fixture.service.Update(context.Background(), &usecase.UpdateProductInput{
		ID:         productID,
		CategoryID: categoryID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFoundOnUpdate)
	fixture.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_Update_Success(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	productID := uuid.New()
	categoryID := uuid.New()
	reloaded := &entity.Product{
		ID:         productID,
		Name:       "Mega Console X Pro",
		CategoryID: categoryID,
		Category:   &entity.Category{ID: categoryID, Name: "Consoles"},
	}

	fixture.productRepo.On("ExistsByID", mock.Anything, productID).Return(true, nil)
	fixture.categoryRepo.On("ExistsByID", mock.Anything, categoryID).Return(true, nil)
	fixture.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)
	fixture.productRepo.On("FindByID", mock.Anything, productID).Return(reloaded, nil)

	product, err := fixture.service.Update(context.Background(), &usecase.UpdateProductInput{
		ID:         productID,
		Name:       "Mega Console X Pro",
		CategoryID: categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Mega Console X Pro", product.Name)
	require.NotNil(t, product.Category)
}

func TestProductService_Get_NotFound(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	productID := uuid.New()

	fixture.productRepo.On("FindByID", mock.Anything, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fixture.service.Get(context.Background(), productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	productID := uuid.New()

	fixture.productRepo.On("Delete", mock.Anything, productID).
		Return(repository.ErrProductNotFound)

	err := fixture.service.Delete(context.Background(), productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_List(t *testing.T) {
	t.Parallel()

	fixture := newProductServiceFixture()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Adventure Game"},
		{ID: uuid.New(), Name: "Racing Game"},
	}

	fixture.productRepo.On("FindAll", mock.Anything).Return(products, nil)

	listed, err := fixture.service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
