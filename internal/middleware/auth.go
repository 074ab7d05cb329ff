package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/constants"
	apierrors "github.com/todofast/api/internal/errors"
	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/services"
)

// RequireAuth resolves the caller identity from the Authorization header.
// Every protected endpoint obtains its identity through this middleware, once
// per request. A missing header, a misshapen header, and every token
// validation failure all produce the same 401 response.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		user, err := authService.Resolve(parts[1])
		if err != nil {
			if errors.Is(err, services.ErrCouldNotValidate) {
				unauthorized(c)
				return
			}
			apierrors.InternalError(c, "Internal server error")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCurrentUser, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	apierrors.Unauthorized(c, "Could not validate credentials")
	c.Abort()
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyCurrentUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
