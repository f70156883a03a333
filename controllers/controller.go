package controllers

import (
	"net/http"

	"permitportal/logger"

	"github.com/gin-gonic/gin"
)

var log logger.Logger = logger.NewNoOpLogger()

// SetLogger sets the logger used for server-side failures.
func SetLogger(l logger.Logger) {
	log = l
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondValidationError(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
