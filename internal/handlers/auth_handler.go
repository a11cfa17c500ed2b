package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/dto"
	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
//
// Method: POST /api/v1/auth/register
// Authentication: None
//
// Success Response: 201 Created with the new user's public profile
//
// Error Responses:
//   - 400: Validation error (email format, password policy, names)
//   - 409: USER_002 when the email is already registered
//   - 500: Internal server error
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return SendError(c, apierrors.UserAlreadyExists)
		}
		if isPasswordPolicyError(err) {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.UserProfileResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
		Message: "User registered successfully",
	})
}

// Login handles user authentication
//
// Method: POST /api/v1/auth/login
// Authentication: None
//
// Success Response: 200 OK with a bearer token and the user's profile
//
// Error Responses:
//   - 400: Validation error
//   - 401: AUTH_001 for an unknown email or wrong password
//   - 500: Internal server error
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, user, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"tokens": tokens,
			"user": dto.UserProfileResponse{
				ID:        user.ID.String(),
				Email:     user.Email,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Role:      user.Role,
				CreatedAt: user.CreatedAt,
			},
		},
	})
}

func isPasswordPolicyError(err error) bool {
	for _, policyErr := range []error{
		services.ErrPasswordEmpty,
		services.ErrPasswordTooShort,
		services.ErrPasswordTooLong,
		services.ErrPasswordNoLetter,
		services.ErrPasswordNoNumber,
	} {
		if errors.Is(err, policyErr) {
			return true
		}
	}
	return false
}
