package services

import (
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type authService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
}

// NewAuthService creates the authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &authService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	hash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "register"})
	slog.Info("user registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		slog.Warn("failed login attempt", "email", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort.
		slog.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	slog.Info("user logged in", "user_id", user.ID)

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, user, nil
}
