package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/thereayou/classlink/internal/models"
)

// MessagePayload тело POST /api/messages
type MessagePayload struct {
	Content        string             `json:"content" binding:"required"`
	Sender         string             `json:"sender" binding:"required"`
	SenderKind     models.AccountKind `json:"senderType" binding:"required,oneof=Teacher Parent"`
	Receiver       string             `json:"receiver" binding:"required"`
	ReceiverKind   models.AccountKind `json:"receiverType" binding:"required,oneof=Teacher Parent Group"`
	Classroom      string             `json:"classroom" binding:"required"`
	IsGroupMessage bool               `json:"isGroupMessage"`
}

func (p MessagePayload) ToModel() *models.Message {
	return &models.Message{
		Content:        p.Content,
		Sender:         p.Sender,
		SenderKind:     p.SenderKind,
		Receiver:       p.Receiver,
		ReceiverKind:   p.ReceiverKind,
		Classroom:      p.Classroom,
		IsGroupMessage: p.IsGroupMessage,
	}
}

// MessageResponse структура для исходящих сообщений
type MessageResponse struct {
	ID             uuid.UUID          `json:"id"`
	Content        string             `json:"content"`
	Sender         string             `json:"sender"`
	SenderKind     models.AccountKind `json:"senderType"`
	Receiver       string             `json:"receiver"`
	ReceiverKind   models.AccountKind `json:"receiverType"`
	Classroom      string             `json:"classroom"`
	IsGroupMessage bool               `json:"isGroupMessage"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		Content:        m.Content,
		Sender:         m.Sender,
		SenderKind:     m.SenderKind,
		Receiver:       m.Receiver,
		ReceiverKind:   m.ReceiverKind,
		Classroom:      m.Classroom,
		IsGroupMessage: m.IsGroupMessage,
		CreatedAt:      m.CreatedAt,
	}
}

func NewMessageResponses(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, len(messages))
	for i := range messages {
		out[i] = NewMessageResponse(&messages[i])
	}
	return out
}

// RealtimeMessage данные sendMessage: уже сохраненное сообщение и имя
// отправителя для уведомлений. Обязательны только поля маршрутизации.
type RealtimeMessage struct {
	ID             string             `json:"id,omitempty"`
	Content        string             `json:"content" binding:"required"`
	Sender         string             `json:"sender" binding:"required_if=IsGroupMessage false"`
	SenderKind     models.AccountKind `json:"senderType,omitempty"`
	SenderName     string             `json:"senderName,omitempty"`
	Receiver       string             `json:"receiver" binding:"required_if=IsGroupMessage false"`
	ReceiverKind   models.AccountKind `json:"receiverType,omitempty"`
	Classroom      string             `json:"classroom" binding:"required"`
	IsGroupMessage bool               `json:"isGroupMessage"`
	CreatedAt      *time.Time         `json:"createdAt,omitempty"`
}
