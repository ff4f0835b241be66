package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getUserID returns the authenticated user set by AuthMiddleware
func getUserID(c *gin.Context) string {
	if id, ok := c.Get(ContextUserID); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// parseIDParam writes a 400 and returns 0 when the path parameter is not a
// positive integer.
func parseIDParam(c *gin.Context, param string) uint {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		details := "must be a positive integer"
		if err != nil {
			details = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: details,
		})
		return 0
	}
	return uint(id)
}

func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(param))
	if err != nil {
		return defaultValue
	}
	return value
}
