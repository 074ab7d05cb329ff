package services

import (
	"errors"
	"fmt"

	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	// ErrUserConflict is returned when the store rejects an insert or when
	// the conflicting field cannot be narrowed down to one of the two.
	ErrUserConflict = errors.New("username or email already exists")
)

// UserService handles user account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with a hashed password. Username conflicts are
// reported before email conflicts, matching the uniqueness check order of the
// registration endpoint.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.FindByUsernameOrEmail(input.Username, input.Email)
	if err == nil {
		if existing.Username == input.Username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent insert can still hit the unique constraints; the
		// store is the synchronization point.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// List retrieves users with pagination.
func (s *UserService) List(offset, limit int) ([]models.User, error) {
	users, err := s.userRepo.List(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateInput represents a full replacement of a user's mutable fields.
type UpdateInput struct {
	Username string
	Email    string
	Password string
}

// Update replaces the username, email, and password of the given user. The
// caller must already have been authorized as the account owner.
func (s *UserService) Update(user *models.User, input UpdateInput) (*models.User, error) {
	if _, err := s.userRepo.FindConflicting(input.Username, input.Email, user.ID); err == nil {
		return nil, ErrUserConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check conflicting user: %w", err)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email
	user.PasswordHash = hashed

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserConflict
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes the user and, through the repository, all of their todos.
func (s *UserService) Delete(user *models.User) error {
	if err := s.userRepo.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
