package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/todofast/api/internal/errors"
)

// RequireSelf checks that the user ID in the URL is the authenticated user's
// own. Ownership is checked before existence: a foreign ID is forbidden even
// when no such user exists, so the response never reveals whether it does.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.Param("id")
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user ID")
			c.Abort()
			return
		}

		user, exists := GetCurrentUser(c)
		if !exists {
			unauthorized(c)
			return
		}

		if user.ID != userID {
			apierrors.Forbidden(c, "Not enough permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
