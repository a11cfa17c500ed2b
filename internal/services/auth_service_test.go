package services

import (
	"errors"
	"testing"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/repositories/repository_mocks"
	"expense-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuthServiceSuite defines the test suite for AuthServiceInterface
type AuthServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userRepo        *repository_mocks.MockUserRepositoryInterface
	passwordService *service_mocks.MockPasswordServiceInterface
	tokenService    *service_mocks.MockTokenServiceInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         AuthServiceInterface
}

// SetupTest runs before each test in the suite
func (s *AuthServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = NewAuthService(s.userRepo, s.passwordService, s.tokenService, s.metrics)
}

// TearDownTest runs after each test in the suite
func (s *AuthServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAuthServiceSuite runs the test suite
func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     gofakeit.Email(),
		Password:  "password123",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
}

func (s *AuthServiceSuite) TestRegister() {
	req := s.registerRequest()

	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed-password", nil)
	s.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		s.Equal(req.Email, u.Email)
		s.Equal("hashed-password", u.PasswordHash)
		s.Equal(models.RoleUser, u.Role)
		u.ID = uuid.New()
		return nil
	})

	user, err := s.service.Register(req)
	s.Require().NoError(err)
	s.Equal(req.Email, user.Email)
	s.NotEqual(uuid.Nil, user.ID)
}

func (s *AuthServiceSuite) TestRegister_EmailTaken() {
	req := s.registerRequest()

	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed-password", nil)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrDuplicateUser)

	_, err := s.service.Register(req)
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceSuite) TestRegister_WeakPassword() {
	req := s.registerRequest()
	req.Password = "short1"

	s.passwordService.EXPECT().HashPassword(req.Password).Return("", ErrPasswordTooShort)

	_, err := s.service.Register(req)
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *AuthServiceSuite) TestLogin() {
	user := &models.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed-password"}
	expiresAt := time.Now().Add(15 * time.Minute)

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword("password123", user.PasswordHash).Return(true)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("signed-token", expiresAt, nil)
	s.userRepo.EXPECT().UpdateLastLogin(user.ID).Return(nil)

	tokens, loggedIn, err := s.service.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	s.Require().NoError(err)
	s.Equal("signed-token", tokens.AccessToken)
	s.Equal("Bearer", tokens.TokenType)
	s.Equal(expiresAt, tokens.ExpiresAt)
	s.Equal(user.ID, loggedIn.ID)
}

func (s *AuthServiceSuite) TestLogin_UnknownEmail() {
	s.userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, repositories.ErrUserNotFound)

	_, _, err := s.service.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLogin_WrongPassword() {
	user := &models.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed-password"}

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword("wrongpassword1", user.PasswordHash).Return(false)

	_, _, err := s.service.Login(&dto.LoginRequest{Email: user.Email, Password: "wrongpassword1"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLogin_LastLoginStampIsBestEffort() {
	user := &models.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed-password"}

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword("password123", user.PasswordHash).Return(true)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("signed-token", time.Now(), nil)
	s.userRepo.EXPECT().UpdateLastLogin(user.ID).Return(errors.New("pq: connection refused"))

	_, _, err := s.service.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	s.NoError(err)
}
