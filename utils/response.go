package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithFieldErrors surfaces a validation rejection: one message per
// offending field, all at once.
func RespondWithFieldErrors(c *gin.Context, errs map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}
