package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/core/services"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockSessions   *MockSessionRepository
	mockAuth       *MockAuthBackend
	mockBusinesses *MockBusinessBackend
	service        portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockSessions = new(MockSessionRepository)
	suite.mockAuth = new(MockAuthBackend)
	suite.mockBusinesses = new(MockBusinessBackend)
	suite.service = services.NewAuthService(suite.mockAuth, suite.mockBusinesses, suite.mockSessions)
}

func signedTestToken(suite *AuthServiceTestSuite, expiry time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)
	return signed
}

func (suite *AuthServiceTestSuite) TestLogin_EstablishesFullSession() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(suite, expiry)
	creds := portsrepo.Credentials{Email: "owner@toko.id", Password: "rahasia"}
	user := &domain.User{ID: "user-1", Email: creds.Email}

	suite.mockAuth.On("Login", ctx, creds).Return(token, nil).Once()
	suite.mockAuth.On("Me", ctx).Return(user, nil).Once()
	suite.mockSessions.On("SetToken", ctx, token).Return(nil).Once()
	suite.mockSessions.On("SetCachedUser", ctx, user).Return(nil).Once()
	suite.mockBusinesses.On("ListBusinesses", ctx).
		Return([]domain.Business{{ID: 42, BusinessName: "Toko Maju"}}, nil).Once()
	suite.mockSessions.On("SetBusinessID", ctx, int64(42)).Return(nil).Once()

	status, err := suite.service.Login(ctx, creds)
	suite.Require().NoError(err)
	suite.True(status.Authenticated)
	suite.Equal(int64(42), status.BusinessID)
	suite.Equal(user, status.User)
	suite.Require().NotNil(status.TokenExpiry)
	suite.WithinDuration(expiry, *status.TokenExpiry, time.Second)

	suite.mockSessions.AssertExpectations(suite.T())
	suite.mockAuth.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_NoBusinessesLeavesSelectionEmpty() {
	ctx := context.Background()
	token := signedTestToken(suite, time.Now().Add(time.Hour))
	creds := portsrepo.Credentials{Email: "new@toko.id", Password: "rahasia"}

	suite.mockAuth.On("Login", ctx, creds).Return(token, nil).Once()
	suite.mockAuth.On("Me", ctx).Return(&domain.User{ID: "user-2"}, nil).Once()
	suite.mockSessions.On("SetToken", ctx, token).Return(nil).Once()
	suite.mockSessions.On("SetCachedUser", ctx, mock.Anything).Return(nil).Once()
	suite.mockBusinesses.On("ListBusinesses", ctx).Return([]domain.Business{}, nil).Once()

	status, err := suite.service.Login(ctx, creds)
	suite.Require().NoError(err)
	suite.Zero(status.BusinessID)
	suite.mockSessions.AssertNotCalled(suite.T(), "SetBusinessID", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_RejectsMissingCredentials() {
	_, err := suite.service.Login(context.Background(), portsrepo.Credentials{Email: "a@b.c"})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAuth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_RequiresFullName() {
	_, err := suite.service.Register(context.Background(), portsrepo.Credentials{
		Email:    "a@b.c",
		Password: "rahasia",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestSession_NoTokenMeansUnauthenticated() {
	suite.mockSessions.On("Token", mock.Anything).Return("", nil)

	status, err := suite.service.Session(context.Background())
	suite.Require().NoError(err)
	suite.False(status.Authenticated)
	suite.Nil(status.User)
}

func (suite *AuthServiceTestSuite) TestSession_ReportsStoredStateWithoutNetwork() {
	token := signedTestToken(suite, time.Now().Add(time.Hour))
	user := &domain.User{ID: "user-1"}
	suite.mockSessions.On("Token", mock.Anything).Return(token, nil)
	suite.mockSessions.On("BusinessID", mock.Anything).Return(int64(42), nil)
	suite.mockSessions.On("CachedUser", mock.Anything).Return(user, nil)

	status, err := suite.service.Session(context.Background())
	suite.Require().NoError(err)
	suite.True(status.Authenticated)
	suite.Equal(int64(42), status.BusinessID)
	suite.Equal(user, status.User)
	suite.NotNil(status.TokenExpiry)

	suite.mockAuth.AssertNotCalled(suite.T(), "Me", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogout_ClearsSession() {
	suite.mockSessions.On("Clear", mock.Anything).Return(nil).Once()
	suite.Require().NoError(suite.service.Logout(context.Background()))
	suite.mockSessions.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
