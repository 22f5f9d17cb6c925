package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rvclassifieds/internal/models"
	"rvclassifieds/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and request authentication.
type AuthService struct {
	userRepo   repositories.UserRepository
	tokens     *TokenService
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// RegisterUser hashes the password and stores a new active user, returning
// its ID. Username and email must be unique across all records.
func (s *AuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (string, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrConflict
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		Phone:          req.Phone,
		HashedPassword: string(hashedPassword),
		CreatedAt:      time.Now().UTC(),
		IsActive:       true,
	}

	// The unique indexes are authoritative when two registrations race.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return "", ErrConflict
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return user.ID, nil
}

// LoginUser verifies the credentials and issues a bearer token.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (*models.Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}

	token, _, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	return &models.Token{AccessToken: token, TokenType: TokenType}, nil
}

// Authenticate resolves a bearer token to the live user record. Inactive
// users are rejected, so tokens of deleted accounts stop working at once.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug("Token rejected", zap.Error(err))
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUnauthorized
	}
	return user, nil
}
