package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/thereayou/classlink/internal/validation"
)

// respondError пишет {"error": ...}; ошибки валидации всегда 400 с полями
func respondError(c *gin.Context, status int, err error) {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON разбирает тело в dst, при ошибке сам отвечает 400
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, validation.FromError(err))
		return false
	}
	return true
}
