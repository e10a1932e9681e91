package handler

import (
	"log/slog"
	"net/http"

	"gamestore/internal/delivery/http/middleware"
	"gamestore/internal/delivery/http/response"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name      string   `json:"nome" validate:"required"`
	Username  string   `json:"usuario" validate:"required"`
	Password  string   `json:"senha" validate:"required,min=8"`
	Photo     string   `json:"foto"`
	BirthDate dateOnly `json:"dataNascimento"`
}

type updateUserRequest struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Name      string    `json:"nome" validate:"required"`
	Username  string    `json:"usuario" validate:"required"`
	Password  string    `json:"senha" validate:"required,min=8"`
	Photo     string    `json:"foto"`
	BirthDate dateOnly  `json:"dataNascimento"`
}

type loginRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// loginResponse mirrors the original payload: the senha field is echoed empty
// next to the issued token.
type loginResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"nome"`
	Username string    `json:"usuario"`
	Password string    `json:"senha"`
	Photo    string    `json:"foto,omitempty"`
	Token    string    `json:"token"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  input.Username,
		Password:  input.Password,
		Name:      input.Name,
		BirthDate: input.BirthDate.Time,
		Photo:     input.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User), "User registered successfully")
}

// Update handles the user update request.
func (h *UserHandler) Update(c echo.Context) error {
	var input updateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), &usecase.UpdateUserInput{
		ID:        input.ID,
		Username:  input.Username,
		Password:  input.Password,
		Name:      input.Name,
		BirthDate: input.BirthDate.Time,
		Photo:     input.Photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(output.User), "User updated successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &loginResponse{
		ID:       output.ID,
		Name:     output.Name,
		Username: output.Username,
		Password: "",
		Photo:    output.Photo,
		Token:    output.Token,
	}, "Login successful")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	username, ok := c.Get(middleware.ContextKeyUsername).(string)
	if !ok || username == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Username missing from token")
	}

	output, err := h.uc.Profile(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(output.User), "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
