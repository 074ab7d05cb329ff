package services

import (
	"errors"
	"fmt"

	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/repository"
	"gorm.io/gorm"
)

// ErrTodoNotFound is returned when a todo does not exist within the acting
// user's scope. A todo owned by someone else surfaces the same way.
var ErrTodoNotFound = errors.New("task not found")

// TodoService handles todo business logic.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// CreateTodoInput represents input for creating a todo.
type CreateTodoInput struct {
	Title       string
	Description string
	State       models.TodoState
	OwnerID     uint64
}

// Create creates a new todo owned by the acting user.
func (s *TodoService) Create(input CreateTodoInput) (*models.Todo, error) {
	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
		UserID:      input.OwnerID,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// ListTodosInput represents filters for listing todos.
type ListTodosInput struct {
	OwnerID     uint64
	Title       string
	Description string
	State       *models.TodoState
	Offset      int
	Limit       int
}

// List returns the acting user's todos matching the provided filters.
func (s *TodoService) List(input ListTodosInput) ([]models.Todo, error) {
	todos, err := s.todoRepo.List(repository.TodoFilter{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
		Offset:      input.Offset,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// UpdateTodoInput represents a partial update; only non-nil fields change.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	State       *models.TodoState
}

// Update applies a partial update to one of the acting user's todos.
func (s *TodoService) Update(ownerID, todoID uint64, input UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndOwner(todoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.State != nil {
		todo.State = *input.State
	}

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// Delete removes one of the acting user's todos.
func (s *TodoService) Delete(ownerID, todoID uint64) error {
	todo, err := s.todoRepo.FindByIDAndOwner(todoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to find todo: %w", err)
	}

	if err := s.todoRepo.Delete(todo); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
