package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rvclassifieds/internal/models"
	"rvclassifieds/internal/repositories"
	"rvclassifieds/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository) *services.AuthService {
	tokens := services.NewTokenService(testJWTSecret, 30*time.Minute)
	return services.NewAuthService(repo, tokens, zap.NewNop())
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	req := models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret1!",
		FullName: "Alice Example",
	}

	var stored *models.User
	mockRepo.On("ExistsByUsernameOrEmail", ctx, "alice", "alice@example.com").Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.User) }).
		Return(nil).Once()

	userID, err := authService.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.ID)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, req.Password, stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte(req.Password)))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "Secret1!", FullName: "Alice"}

	// Found by the lookup.
	mockRepo.On("ExistsByUsernameOrEmail", ctx, "alice", "alice@example.com").Return(true, nil).Once()
	_, err := authService.RegisterUser(ctx, req)
	assert.ErrorIs(t, err, services.ErrConflict)

	// Lost a race: the unique index rejects the insert.
	mockRepo.On("ExistsByUsernameOrEmail", ctx, "alice", "alice@example.com").Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("failed to create user: %w", repositories.ErrDuplicateKey)).Once()
	_, err = authService.RegisterUser(ctx, req)
	assert.ErrorIs(t, err, services.ErrConflict)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{
		ID:             "user-123",
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: hashed(t, "Secret1!"),
		IsActive:       true,
	}

	// Test successful login
	mockRepo.On("GetByUsername", ctx, "alice").Return(user, nil).Once()
	token, err := authService.LoginUser(ctx, "alice", "Secret1!")
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	subject, err := services.NewTokenService(testJWTSecret, time.Minute).Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByUsername", ctx, "alice").Return(user, nil).Once()
	_, err = authService.LoginUser(ctx, "alice", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, repositories.ErrRecordNotFound).Once()
	_, err = authService.LoginUser(ctx, "nobody", "Secret1!")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)
	tokens := services.NewTokenService(testJWTSecret, 30*time.Minute)

	token, _, err := tokens.Issue("alice")
	require.NoError(t, err)

	active := &models.User{ID: "user-123", Username: "alice", IsActive: true}
	mockRepo.On("GetByUsername", ctx, "alice").Return(active, nil).Once()
	user, err := authService.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)

	// Deactivated account
	inactive := &models.User{ID: "user-123", Username: "alice", IsActive: false}
	mockRepo.On("GetByUsername", ctx, "alice").Return(inactive, nil).Once()
	_, err = authService.Authenticate(ctx, token)
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	// Username no longer resolves (anonymized account)
	mockRepo.On("GetByUsername", ctx, "alice").Return(nil, repositories.ErrRecordNotFound).Once()
	_, err = authService.Authenticate(ctx, token)
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	// Garbage token never reaches the repository
	_, err = authService.Authenticate(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	mockRepo.AssertExpectations(t)
}
