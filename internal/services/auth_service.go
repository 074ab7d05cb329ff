package services

import (
	"errors"
	"fmt"

	"github.com/todofast/api/internal/auth"
	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a failed
	// password check so the two cases are indistinguishable to the client.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrCouldNotValidate covers every token validation failure: malformed
	// or expired token, missing subject claim, and a subject that no longer
	// resolves to a user. The collapse is deliberate; never surface which
	// of the causes applied.
	ErrCouldNotValidate = errors.New("could not validate credentials")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues an access token on success.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Resolve recovers the authenticated user from a bearer token. It is invoked
// per request; identity is never cached across requests.
func (s *AuthService) Resolve(tokenString string) (*models.User, error) {
	claims, err := s.tokens.Decode(tokenString)
	if err != nil {
		return nil, ErrCouldNotValidate
	}

	if claims.Subject == "" {
		return nil, ErrCouldNotValidate
	}

	user, err := s.userRepo.FindByEmail(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouldNotValidate
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// Refresh issues a brand-new token for an already-authenticated user. The
// previous token is not tracked and stays valid until its own expiration.
func (s *AuthService) Refresh(user *models.User) (string, error) {
	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
