package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error envelope used by every endpoint.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}
