package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/classlink/internal/handlers/dto"
	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/middleware"
	"github.com/thereayou/classlink/internal/services"
)

type HTTPMessageHandler struct {
	messages services.MessageStore
	log      *logger.Logger
}

func NewHTTPMessageHandler(messages services.MessageStore, log *logger.Logger) *HTTPMessageHandler {
	return &HTTPMessageHandler{messages: messages, log: log}
}

// GetClassroomMessages отдает историю класса: групповые сообщения и личные,
// где запрашивающий отправитель или получатель
func (h *HTTPMessageHandler) GetClassroomMessages(c *gin.Context) {
	requester, _ := middleware.Principal(c)

	messages, err := h.messages.GetClassroomMessages(c.Request.Context(), c.Param("classroomId"), requester.String())
	if err != nil {
		h.log.Error("classroom history %s: %v", c.Param("classroomId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponses(messages))
}

// GetPrivateMessages отдает переписку запрашивающего с собеседником
func (h *HTTPMessageHandler) GetPrivateMessages(c *gin.Context) {
	requester, _ := middleware.Principal(c)

	messages, err := h.messages.GetPrivateMessages(c.Request.Context(), requester.String(), c.Param("receiverId"))
	if err != nil {
		h.log.Error("private history with %s: %v", c.Param("receiverId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponses(messages))
}

// CreateMessage сохраняет сообщение. Рассылку делает клиент через sendMessage.
func (h *HTTPMessageHandler) CreateMessage(c *gin.Context) {
	var req dto.MessagePayload
	if !bindJSON(c, &req) {
		return
	}

	message := req.ToModel()
	if err := h.messages.SaveMessage(c.Request.Context(), message); err != nil {
		h.log.Error("save message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewMessageResponse(message))
}
