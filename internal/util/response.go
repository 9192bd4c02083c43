package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the generic success payload.
type Response map[string]interface{}

// Success writes a 200 with the given payload.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Error writes a non-2xx response. Every error body has the same shape:
// {"error": "..."}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}
