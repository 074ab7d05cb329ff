package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/dto"
)

// Root returns the API welcome message.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageDTO{Message: "Hello, World!"})
}
