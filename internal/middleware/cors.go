package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS разрешает запросы фронтенда с allowedOrigin
func CORS(allowedOrigin string) gin.HandlerFunc {
	allowedOrigin = strings.TrimSuffix(allowedOrigin, "/")
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" && strings.EqualFold(origin, allowedOrigin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Max-Age", "86400")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
