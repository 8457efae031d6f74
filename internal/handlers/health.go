package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/classlink/internal/services"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	checks map[string]services.Pinger
}

// NewHealthHandler пингует все зависимости на каждый запрос
func NewHealthHandler(checks map[string]services.Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(gin.H, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
