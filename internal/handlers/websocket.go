package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/middleware"
	ws "github.com/thereayou/classlink/internal/websocket"
)

// WebSocketHandler управляет WebSocket соединениями
type WebSocketHandler struct {
	hub            *ws.Hub
	messageHandler ws.ClientMessageHandler
	upgrader       websocket.Upgrader
	log            *logger.Logger
}

// NewWebSocketHandler создает новый WebSocket handler; allowedOrigin обычно CLIENT_URL
func NewWebSocketHandler(hub *ws.Hub, messageHandler ws.ClientMessageHandler, allowedOrigin string, log *logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		messageHandler: messageHandler,
		log:            log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigin),
		},
	}
}

// originChecker пропускает запросы без Origin, с allowed или с того же хоста
func originChecker(allowed string) func(r *http.Request) bool {
	allowed = strings.TrimSuffix(allowed, "/")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || strings.EqualFold(origin, allowed) {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

// HandleWebSocket обрабатывает WebSocket соединения
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	accountID, kind := middleware.Principal(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade for %s: %v", accountID, err)
		return
	}

	client := ws.NewClient(h.hub, conn, accountID, string(kind))
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.messageHandler)
}
