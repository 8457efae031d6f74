package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/classlink/internal/database"
	"github.com/thereayou/classlink/internal/handlers/dto"
	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/middleware"
	"github.com/thereayou/classlink/internal/services"
	"github.com/thereayou/classlink/pkg/auth"
)

type AuthHandler struct {
	accounts   services.AccountStore
	jwtManager *auth.JWTManager
	blacklist  services.TokenBlacklist
	log        *logger.Logger
}

func NewAuthHandler(accounts services.AccountStore, jwtMgr *auth.JWTManager, blacklist services.TokenBlacklist, log *logger.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwtManager: jwtMgr, blacklist: blacklist, log: log}
}

// Login выдаёт JWT учителю или родителю
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.accounts.FindAccountByEmail(c.Request.Context(), req.Kind, req.Email)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		h.log.Error("login lookup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up account"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordDigest()), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expiresAt, err := h.jwtManager.Generate(account.AccountID().String(), string(account.Kind()))
	if err != nil {
		h.log.Error("generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:          token,
		TokenExpiresAt: expiresAt,
		ID:             account.AccountID(),
		Kind:           account.Kind(),
		DisplayName:    account.DisplayName(),
	})
}

// Logout ставит токен в черный список до истечения
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken := c.MustGet(middleware.TokenKey).(string)

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if ttl := time.Until(exp); ttl > 0 {
		if err := h.blacklist.Revoke(c.Request.Context(), rawToken, ttl); err != nil {
			h.log.Error("revoke token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke token"})
			return
		}
	}

	c.Status(http.StatusOK)
}

// Verify возвращает текущего пользователя
func (h *AuthHandler) Verify(c *gin.Context) {
	id, kind := middleware.Principal(c)

	account, err := h.accounts.FindAccount(c.Request.Context(), kind, id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	if err != nil {
		h.log.Error("verify %s %s: %v", kind, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up account"})
		return
	}

	c.JSON(http.StatusOK, dto.PrincipalResponse{
		ID:          id,
		Kind:        kind,
		DisplayName: account.DisplayName(),
	})
}
