package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/dto"
	apierrors "github.com/todofast/api/internal/errors"
	"github.com/todofast/api/internal/middleware"
	"github.com/todofast/api/internal/services"
	"github.com/todofast/api/internal/utils"
)

// UserHandler coordinates user account HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// List returns a paginated list of users.
func (h *UserHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, err := h.userService.List(params.Offset, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// Update replaces the authenticated user's username, email, and password.
// Ownership of the target ID has already been enforced by RequireSelf.
func (h *UserHandler) Update(c *gin.Context) {
	type UpdateUserRequest struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	updated, err := h.userService.Update(user, services.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*updated))
}

// Delete removes the authenticated user's account and all of their todos.
func (h *UserHandler) Delete(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	if err := h.userService.Delete(user); err != nil {
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.MessageDTO{Message: "User deleted"})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already exists")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already exists")
	case errors.Is(err, services.ErrUserConflict):
		apierrors.Conflict(c, "Username or email already exists")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
