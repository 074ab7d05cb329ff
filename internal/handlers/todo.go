package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/dto"
	apierrors "github.com/todofast/api/internal/errors"
	"github.com/todofast/api/internal/middleware"
	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/services"
	"github.com/todofast/api/internal/utils"
)

// TodoHandler coordinates todo HTTP handlers. All operations act within the
// authenticated user's own scope.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// Create creates a new todo owned by the authenticated user.
func (h *TodoHandler) Create(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	type CreateTodoRequest struct {
		Title       string           `json:"title" binding:"required"`
		Description string           `json:"description"`
		State       models.TodoState `json:"state" binding:"required,oneof=draft todo doing done trash"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Create(services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		State:       req.State,
		OwnerID:     user.ID,
	})
	if err != nil {
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// List returns the authenticated user's todos, with optional filters for
// title substring, description substring, and state.
func (h *TodoHandler) List(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	params := utils.GetPaginationParams(c)

	input := services.ListTodosInput{
		OwnerID:     user.ID,
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Offset:      params.Offset,
		Limit:       params.Limit,
	}

	if stateStr := c.Query("state"); stateStr != "" {
		state := models.TodoState(stateStr)
		if !state.Valid() {
			apierrors.BadRequest(c, "Invalid state")
			return
		}
		input.State = &state
	}

	todos, err := h.todoService.List(input)
	if err != nil {
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos))
}

// Update partially updates one of the authenticated user's todos; only the
// fields present in the payload change.
func (h *TodoHandler) Update(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid todo ID")
		return
	}

	type UpdateTodoRequest struct {
		Title       *string           `json:"title"`
		Description *string           `json:"description"`
		State       *models.TodoState `json:"state" binding:"omitempty,oneof=draft todo doing done trash"`
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Update(user.ID, todoID, services.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		State:       req.State,
	})
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// Delete removes one of the authenticated user's todos.
func (h *TodoHandler) Delete(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid todo ID")
		return
	}

	if err := h.todoService.Delete(user.ID, todoID); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageDTO{Message: "Task has been deleted successfully."})
}

func respondTodoError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTodoNotFound) {
		apierrors.NotFound(c, "Task not found.")
		return
	}
	apierrors.InternalError(c, "Internal server error")
}
