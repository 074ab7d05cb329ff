package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/todofast/api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Offset int
	Limit  int
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultListLimit)))

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	return PaginationParams{
		Offset: offset,
		Limit:  limit,
	}
}
