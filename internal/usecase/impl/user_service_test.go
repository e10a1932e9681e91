package impl

import (
	"context"
	"testing"
	"time"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	service  usecase.UserUsecase
	userRepo *mockUserRepository
	hasher   *fakeHasher
	tokens   *fakeTokenService
}

func newUserServiceFixture() *userServiceFixture {
	userRepo := new(mockUserRepository)
	factory := &stubRepositoryFactory{users: userRepo}
	hasher := &fakeHasher{}
	tokens := &fakeTokenService{}

	service := NewUserService(UserServiceParams{
		TxManager:    &stubTransactionManager{factory: factory},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newTestLogger(),
	})

	return &userServiceFixture{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func adultBirthDate() time.Time {
	return time.Now().AddDate(-30, 0, 0)
}

func minorBirthDate() time.Time {
	return time.Now().AddDate(-17, 0, 0)
}

func TestUserService_Register_Success(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	generatedID := uuid.New()

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").
		Return(nil, repository.ErrUserNotFound)
	fixture.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*entity.User)
			created.ID = generatedID
		}).
		Return(nil)

	output, err := fixture.service.Register(context.Background(), &usecase.RegisterInput{
		Username:  "gamer01",
		Password:  "secret123",
		Name:      "Gamer One",
		BirthDate: adultBirthDate(),
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, generatedID, output.User.ID)
	assert.Equal(t, "gamer01", output.User.Username)
	assert.Empty(t, output.User.Password, "password hash must not leak outward")
	assert.Equal(t, 1, fixture.hasher.hashCalls)
	fixture.userRepo.AssertExpectations(t)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").
		Return(&entity.User{ID: uuid.New(), Username: "gamer01"}, nil)

	output, err := fixture.service.Register(context.Background(), &usecase.RegisterInput{
		Username:  "gamer01",
		Password:  "secret123",
		BirthDate: adultBirthDate(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fixture.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_Underage(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()

	fixture.userRepo.On("FindByUsername", mock.Anything, "kid").
		Return(nil, repository.ErrUserNotFound)

	output, err := fixture.service.Register(context.Background(), &usecase.RegisterInput{
		Username:  "kid",
		Password:  "secret123",
		BirthDate: minorBirthDate(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserUnderage)
	assert.Zero(t, fixture.hasher.hashCalls, "underage registration must not reach hashing")
	fixture.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_MissingBirthDateRejected(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()

	fixture.userRepo.On("FindByUsername", mock.Anything, "ageless").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixture.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "ageless",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserUnderage)
}

func TestUserService_Register_ConcurrentDuplicateTranslated(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").
		Return(nil, repository.ErrUserNotFound)
	fixture.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUsername)

	_, err := fixture.service.Register(context.Background(), &usecase.RegisterInput{
		Username:  "gamer01",
		Password:  "secret123",
		BirthDate: adultBirthDate(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Update_UserNotFound(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	missingID := uuid.New()

	fixture.userRepo.On("FindByID", mock.Anything, missingID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fixture.service.Update(context.Background(), &usecase.UpdateUserInput{
		ID:       missingID,
		Username: "gamer01",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Update_UsernameConflict(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	userID := uuid.New()

	fixture.userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Username: "gamer01", BirthDate: adultBirthDate()}, nil)
	fixture.userRepo.On("FindByUsername", mock.Anything, "taken").
		Return(&entity.User{ID: uuid.New(), Username: "taken"}, nil)

	_, err := fixture.service.Update(context.Background(), &usecase.UpdateUserInput{
		ID:       userID,
		Username: "taken",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fixture.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Update_KeepingOwnUsernameIsNotAConflict(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Username: "gamer01", BirthDate: adultBirthDate()}

	fixture.userRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").Return(stored, nil)
	fixture.userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fixture.service.Update(context.Background(), &usecase.UpdateUserInput{
		ID:       userID,
		Username: "gamer01",
		Password: "secret123",
		Name:     "Renamed",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", output.User.Name)
}

func TestUserService_Update_BirthDatePreserved(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	userID := uuid.New()
	storedBirthDate := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
	requestedBirthDate := time.Date(2001, time.July, 1, 0, 0, 0, 0, time.UTC)

	fixture.userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Username: "gamer01", BirthDate: storedBirthDate}, nil)
	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").
		Return(nil, repository.ErrUserNotFound)

	var persisted *entity.User
	fixture.userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.User)
		}).
		Return(nil)

	output, err := fixture.service.Update(context.Background(), &usecase.UpdateUserInput{
		ID:        userID,
		Username:  "gamer01",
		Password:  "secret123",
		BirthDate: requestedBirthDate,
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.True(t, persisted.BirthDate.Equal(storedBirthDate), "stored birth date must survive the update")
	assert.True(t, output.User.BirthDate.Equal(storedBirthDate))
}

// Updates re-hash whatever arrives in the password field. A client that sends
// the stored hash back gets that hash re-hashed, locking the account out of
// its old password. This pins the behavior so a change to it is a conscious one.
func TestUserService_Update_PasswordAlwaysRehashed(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	userID := uuid.New()
	storedHash := "hashed:original-password"

	fixture.userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Username: "gamer01", Password: storedHash, BirthDate: adultBirthDate()}, nil)
	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").
		Return(nil, repository.ErrUserNotFound)

	var persisted *entity.User
	fixture.userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.User)
		}).
		Return(nil)

	_, err := fixture.service.Update(context.Background(), &usecase.UpdateUserInput{
		ID:       userID,
		Username: "gamer01",
		Password: storedHash,
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 1, fixture.hasher.hashCalls)
	assert.Equal(t, "hashed:"+storedHash, persisted.Password, "the hash itself gets re-hashed")
}

func TestUserService_Login_Success(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	userID := uuid.New()
	stored := &entity.User{
		ID:       userID,
		Username: "gamer01",
		Name:     "Gamer One",
		Password: "hashed:secret123",
		Photo:    "https://cdn.example/avatar.png",
	}

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").Return(stored, nil)
	fixture.userRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)

	output, err := fixture.service.Login(context.Background(), &usecase.LoginInput{
		Username: "gamer01",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, "gamer01", output.Username)
	assert.Equal(t, "Gamer One", output.Name)
	assert.Equal(t, "Bearer token-for-gamer01", output.Token)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	stored := &entity.User{ID: uuid.New(), Username: "gamer01", Password: "hashed:secret123"}

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").Return(stored, nil)

	output, err := fixture.service.Login(context.Background(), &usecase.LoginInput{
		Username: "gamer01",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fixture.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()

	fixture.userRepo.On("FindByUsername", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixture.service.Login(context.Background(), &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials,
		"unknown usernames must be indistinguishable from wrong passwords")
}

func TestUserService_Login_UserVanishedAfterCredentialCheck(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Username: "gamer01", Password: "hashed:secret123"}

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").Return(stored, nil)
	fixture.userRepo.On("FindByID", mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fixture.service.Login(context.Background(), &usecase.LoginInput{
		Username: "gamer01",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Profile(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()
	stored := &entity.User{ID: uuid.New(), Username: "gamer01", Password: "hashed:secret123"}

	fixture.userRepo.On("FindByUsername", mock.Anything, "gamer01").Return(stored, nil)

	output, err := fixture.service.Profile(context.Background(), "gamer01")

	require.NoError(t, err)
	assert.Equal(t, "gamer01", output.User.Username)
	assert.Empty(t, output.User.Password)
}

func TestUserService_Profile_NotFound(t *testing.T) {
	t.Parallel()

	fixture := newUserServiceFixture()

	fixture.userRepo.On("FindByUsername", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixture.service.Profile(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
