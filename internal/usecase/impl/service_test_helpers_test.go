package impl

import (
	"context"
	"io"
	"log/slog"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repository doubles ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *mockCategoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *mockProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// --- transaction doubles ---

// stubRepositoryFactory hands the test's repository doubles to transactional code.
type stubRepositoryFactory struct {
	users      *mockUserRepository
	categories *mockCategoryRepository
	products   *mockProductRepository
}

func (f *stubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *stubRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return f.categories
}

func (f *stubRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.products
}

// stubTransactionManager runs the callback against the stub factory without a
// real transaction, mirroring the commit/rollback contract by propagating the
// callback error.
type stubTransactionManager struct {
	factory *stubRepositoryFactory
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- stateless service doubles ---

// fakeHasher hashes deterministically so tests can assert both the hashing
// itself and how many times it ran.
type fakeHasher struct {
	hashCalls int
	failHash  bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	f.hashCalls++
	if f.failHash {
		return "", errors.New("hash failure")
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens keyed by username.
type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) Issue(username string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	return "token-for-" + username, nil
}

func (f *fakeTokenService) Verify(token string) (string, error) {
	const prefix = "token-for-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.New("invalid token")
	}

	return token[len(prefix):], nil
}
