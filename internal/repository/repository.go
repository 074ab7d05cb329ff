package repository

import (
	"github.com/todofast/api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)

	// FindByUsernameOrEmail finds a user matching either field
	FindByUsernameOrEmail(username, email string) (*models.User, error)

	// FindConflicting finds another user already holding the username or email
	FindConflicting(username, email string, excludeID uint64) (*models.User, error)

	// List retrieves users with pagination
	List(offset, limit int) ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete deletes a user and all of their todos
	Delete(id uint64) error
}

// TodoFilter holds filtering options for listing todos
type TodoFilter struct {
	OwnerID     uint64
	Title       string
	Description string
	State       *models.TodoState
	Offset      int
	Limit       int
}

// TodoRepository defines the interface for todo data access. Lookups are
// scoped to the owner; a foreign todo is indistinguishable from a missing one.
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *models.Todo) error

	// FindByIDAndOwner finds a todo by ID within the owner's scope
	FindByIDAndOwner(id, ownerID uint64) (*models.Todo, error)

	// List retrieves the owner's todos with filtering and pagination
	List(filter TodoFilter) ([]models.Todo, error)

	// Update updates a todo
	Update(todo *models.Todo) error

	// Delete deletes a todo
	Delete(todo *models.Todo) error
}
