package dto

import (
	"github.com/todofast/api/internal/models"
)

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID          uint64           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	State       models.TodoState `json:"state"`
}

// TodoListResponse represents a list of todos
type TodoListResponse struct {
	Todos []TodoDTO `json:"todos"`
}

// ToTodoDTO converts a Todo model to TodoDTO
func ToTodoDTO(todo models.Todo) TodoDTO {
	return TodoDTO{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		State:       todo.State,
	}
}

// ToTodoListResponse converts a slice of todos to TodoListResponse
func ToTodoListResponse(todos []models.Todo) TodoListResponse {
	items := make([]TodoDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoDTO(todo)
	}
	return TodoListResponse{Todos: items}
}
