package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/dto"
	apierrors "github.com/todofast/api/internal/errors"
	"github.com/todofast/api/internal/middleware"
	"github.com/todofast/api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login exchanges form-encoded credentials for an access token. The username
// field carries the user's email.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(services.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Incorrect email or password")
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenDTO(token))
}

// Refresh issues a new token for the already-authenticated caller. The
// presented token is not invalidated and expires on its own schedule.
func (h *AuthHandler) Refresh(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Could not validate credentials")
		return
	}

	token, err := h.authService.Refresh(user)
	if err != nil {
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenDTO(token))
}
