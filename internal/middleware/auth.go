package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/classlink/internal/models"
	"github.com/thereayou/classlink/internal/services"
	"github.com/thereayou/classlink/pkg/auth"
)

const (
	AccountIDKey   = "accountID"
	AccountKindKey = "accountKind"
	TokenKey       = "token"
)

// AuthMiddleware проверяет JWT токен из Authorization header
func AuthMiddleware(jwtManager *auth.JWTManager, blacklist services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		authenticate(c, token, jwtManager, blacklist)
	}
}

// WSAuthMiddleware принимает токен также из query, браузерный WebSocket не шлёт заголовки
func WSAuthMiddleware(jwtManager *auth.JWTManager, blacklist services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		authenticate(c, token, jwtManager, blacklist)
	}
}

func authenticate(c *gin.Context, token string, jwtManager *auth.JWTManager, blacklist services.TokenBlacklist) {
	// ошибку проверки считаем отзывом
	revoked, err := blacklist.IsRevoked(c.Request.Context(), token)
	if err != nil || revoked {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted"})
		return
	}

	claims, err := jwtManager.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid account id"})
		return
	}

	kind := models.AccountKind(claims.Kind)
	if kind != models.KindTeacher && kind != models.KindParent {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid account kind"})
		return
	}

	c.Set(AccountIDKey, accountID)
	c.Set(AccountKindKey, kind)
	c.Set(TokenKey, token)
	c.Next()
}

// Principal возвращает аккаунт, установленный auth middleware
func Principal(c *gin.Context) (uuid.UUID, models.AccountKind) {
	return c.MustGet(AccountIDKey).(uuid.UUID), c.MustGet(AccountKindKey).(models.AccountKind)
}
