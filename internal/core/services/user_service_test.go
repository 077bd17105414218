package services_test

import (
	"context"
	"testing"

	"github.com/bdpay/dashboard-backend/internal/apperrors"
	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/bdpay/dashboard-backend/internal/core/services"
	"github.com/bdpay/dashboard-backend/internal/dto"
	"github.com/bdpay/dashboard-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		FirstName: "Nadia",
		LastName:  "Rahman",
		Email:     "nadia@example.com",
		Password:  "correct-horse",
	}

	s.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.AuthProvider == domain.ProviderLocal &&
			user.UserID != "" &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash)
	})).Return(nil).Once()

	user, err := s.service.RegisterUser(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("Nadia Rahman", user.FullName())
	s.NotEqual(req.Password, user.PasswordHash)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		FirstName: "Nadia",
		LastName:  "Rahman",
		Email:     "taken@example.com",
		Password:  "correct-horse",
	}

	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := s.service.RegisterUser(ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Nil(user)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)

	stored := &domain.User{UserID: "u1", Email: "nadia@example.com", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByEmail", ctx, "nadia@example.com").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(ctx, "nadia@example.com", "correct-horse")

	s.Require().NoError(err)
	s.Equal("u1", user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)

	stored := &domain.User{UserID: "u1", Email: "nadia@example.com", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByEmail", ctx, "nadia@example.com").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(ctx, "nadia@example.com", "wrong")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailIsUnauthorized() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	// Unknown email must look identical to a wrong password.
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.NotErrorIs(err, apperrors.ErrNotFound)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestChangePassword_WrongOldPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("old-secret")
	s.Require().NoError(err)

	stored := &domain.User{UserID: "u1", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByID", ctx, "u1", false).Return(stored, nil).Once()

	err = s.service.ChangePassword(ctx, "u1", "not-the-old-one", "new-secret-12")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.mockUserRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUser() {
	ctx := context.Background()
	stored := &domain.User{UserID: "u1", Email: "nadia@example.com"}
	s.mockUserRepo.On("FindUserByEmail", ctx, "nadia@example.com").Return(stored, nil).Once()

	user, created, err := s.service.FindOrCreateOAuthUser(ctx, "Nadia", "Rahman", "nadia@example.com", domain.ProviderGoogle)

	s.Require().NoError(err)
	s.False(created)
	s.Equal("u1", user.UserID)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesOnFirstSignIn() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new@example.com" && user.AuthProvider == domain.ProviderGoogle
	})).Return(nil).Once()

	user, created, err := s.service.FindOrCreateOAuthUser(ctx, "New", "User", "new@example.com", domain.ProviderGoogle)

	s.Require().NoError(err)
	s.True(created)
	s.NotEmpty(user.UserID)
	s.mockUserRepo.AssertExpectations(s.T())
}
