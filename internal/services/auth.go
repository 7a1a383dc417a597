package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reqres/internal/domain"
)

// Credentials is the single account the login stub accepts.
type Credentials struct {
	Email        string
	PasswordHash string
}

type authService struct {
	creds       Credentials
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService that checks against creds and issues
// tokens through tokenIssuer.
func NewAuthService(creds Credentials, userRepo domain.UserRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		creds:       creds,
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func checkPresent(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrMissingEmail
	}
	if password == "" {
		return domain.ErrMissingPassword
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if err := checkPresent(email, password); err != nil {
		return "", err
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.creds.Email) {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.creds.PasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	userID := 0
	if user, err := s.userRepo.GetByEmail(ctx, s.creds.Email); err == nil {
		userID = user.ID
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	token, err := s.tokenIssuer.Issue(userID, s.creds.Email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Register succeeds only for users that already exist in the store.
func (s *authService) Register(ctx context.Context, email, password string) (int, string, error) {
	if err := checkPresent(email, password); err != nil {
		return 0, "", err
	}
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, "", domain.ErrUnknownUser
		}
		return 0, "", fmt.Errorf("failed to get user: %w", err)
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return 0, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user.ID, token, nil
}
