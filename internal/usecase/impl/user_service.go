package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gamestore/internal/delivery/context"
	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/domain/service"
	"gamestore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("username", input.Username))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Username uniqueness is reported before any other rule so concurrent
		// and sequential registrations fail the same way.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		newUser := &entity.User{
			Username:  input.Username,
			Name:      input.Name,
			BirthDate: input.BirthDate,
			Photo:     input.Photo,
		}

		if !newUser.IsOfLegalAge(time.Now()) {
			srv.log(ctx).Warn("Registration rejected for underage user", slog.String("username", input.Username))

			return domainerrors.ErrUserUnderage.WrapMessage("user must be at least 18 years old")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
		}
		newUser.Password = hashedPassword

		if err := userRepo.Create(ctx, newUser); err != nil {
			// A concurrent registration can slip past the availability check;
			// the unique constraint is the final arbiter.
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.UserOutput{User: registeredUser.WithoutPassword()}, nil
}

// Update orchestrates the user update process. The stored birth date is
// immutable: whatever the caller sends, the persisted value wins.
func (srv *userService) Update(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting user update", slog.Any("userID", input.ID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		storedUser, err := userRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user to update does not exist")
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		conflictingUser, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil && conflictingUser.ID != input.ID {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already taken by another user")
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability for update")
		}

		if !input.BirthDate.IsZero() && !input.BirthDate.Equal(storedUser.BirthDate) {
			srv.log(ctx).Warn("Ignoring birth date change on update",
				slog.Any("userID", input.ID),
				slog.Time("stored", storedUser.BirthDate),
				slog.Time("requested", input.BirthDate))
		}

		// The password is re-hashed unconditionally, so sending back the
		// stored hash re-hashes the hash itself. Callers must always supply
		// the plaintext password on update.
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during update")
		}

		storedUser.Username = input.Username
		storedUser.Name = input.Name
		storedUser.Photo = input.Photo
		storedUser.Password = hashedPassword

		if err := userRepo.Update(ctx, storedUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username already taken by another user")
			}

			return errors.Wrap(err, "failed to update user")
		}

		updatedUser = storedUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute user update transaction", slog.Any("userID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Debug("User update completed", slog.Any("userID", updatedUser.ID))

	return &usecase.UserOutput{User: updatedUser.WithoutPassword()}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	storedUser, err := srv.loadLoginUser(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, storedUser.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// Defensive re-fetch by ID: the account can disappear between the
	// credential check and session issuance.
	refreshedUser, err := srv.userRepo.FindByID(ctx, storedUser.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user vanished during login")
		}

		return nil, errors.Wrap(err, "failed to reload user during login")
	}

	rawToken, err := srv.tokenService.Issue(refreshedUser.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", refreshedUser.ID))

	return &usecase.LoginOutput{
		ID:       refreshedUser.ID,
		Username: refreshedUser.Username,
		Name:     refreshedUser.Name,
		Photo:    refreshedUser.Photo,
		Token:    "Bearer " + rawToken,
	}, nil
}

// loadLoginUser reads the account from primary in a short transaction to
// avoid stale reads on replicas. A missing username maps to invalid
// credentials so the response does not leak which usernames exist.
func (srv *userService) loadLoginUser(ctx context.Context, username string) (*entity.User, error) {
	var storedUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findErr error
		storedUser, findErr = userRepo.FindByUsername(ctx, username)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
			}

			return errors.Wrap(findErr, "failed to find user by username")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login lookup transaction")
	}

	return storedUser, nil
}

// Profile returns the account behind an authenticated session.
func (srv *userService) Profile(ctx context.Context, username string) (*usecase.UserOutput, error) {
	storedUser, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return &usecase.UserOutput{User: storedUser.WithoutPassword()}, nil
}
