package handlers

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/thereayou/classlink/internal/handlers/dto"
	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/notify"
	"github.com/thereayou/classlink/internal/validation"
	"github.com/thereayou/classlink/internal/websocket"
)

var ErrUnknownEvent = errors.New("unknown event")

// Broadcaster - часть хаба, нужная диспетчеру
type Broadcaster interface {
	Emit(event websocket.EventType, data interface{}, rooms ...string) int
}

// MessageHandler обрабатывает события клиента кроме входа и выхода из комнат
type MessageHandler struct {
	hub      Broadcaster
	notifier notify.Notifier
	log      *logger.Logger
}

func NewMessageHandler(hub Broadcaster, notifier notify.Notifier, log *logger.Logger) *MessageHandler {
	return &MessageHandler{
		hub:      hub,
		notifier: notifier,
		log:      log,
	}
}

func (h *MessageHandler) HandleMessage(client *websocket.Client, env *websocket.Envelope) error {
	switch env.Event {
	case websocket.EventSendMessage:
		return h.handleSendMessage(env.Data)

	case websocket.EventCreateEvent, websocket.EventUpdateEvent:
		return h.handleEvent(env.Event, env.Data)

	case websocket.EventCreateReport, websocket.EventUpdateReport:
		return h.handleReport(env.Event, env.Data)

	default:
		h.log.Warn("unknown event %q from %s", env.Event, client.ID)
		return errors.Wrap(ErrUnknownEvent, string(env.Event))
	}
}

// handleSendMessage рассылает уже сохраненное сообщение и отдает его в уведомления
func (h *MessageHandler) handleSendMessage(data json.RawMessage) error {
	var msg dto.RealtimeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return websocket.ErrInvalidMessage
	}
	if err := validation.Struct(msg); err != nil {
		return err
	}

	rooms := websocket.MessageRooms(msg.IsGroupMessage, msg.Classroom, msg.Sender, msg.Receiver)
	delivered := h.hub.Emit(websocket.EventReceiveMessage, msg, rooms...)
	h.log.Info("message %s to %v reached %d connections", msg.ID, rooms, delivered)

	h.notifier.MessagePosted(notify.MessageNotice{
		MessageID:      msg.ID,
		Sender:         msg.Sender,
		SenderLabel:    msg.SenderName,
		Receiver:       msg.Receiver,
		Classroom:      msg.Classroom,
		IsGroupMessage: msg.IsGroupMessage,
	})
	return nil
}

func (h *MessageHandler) handleEvent(event websocket.EventType, data json.RawMessage) error {
	var payload dto.EventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return websocket.ErrInvalidMessage
	}
	if err := validation.Struct(payload); err != nil {
		return err
	}

	notice := notify.EventNotice{Title: payload.Title, Classroom: payload.Classroom}
	if event == websocket.EventUpdateEvent {
		h.notifier.EventUpdated(notice)
	} else {
		h.notifier.EventCreated(notice)
	}
	return nil
}

func (h *MessageHandler) handleReport(event websocket.EventType, data json.RawMessage) error {
	var payload dto.ReportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return websocket.ErrInvalidMessage
	}
	if err := validation.Struct(payload); err != nil {
		return err
	}

	notice := notify.ReportNotice{Title: payload.Title, Classroom: payload.Classroom, StudentID: payload.StudentID}
	if event == websocket.EventUpdateReport {
		h.notifier.ReportUpdated(notice)
	} else {
		h.notifier.ReportCreated(notice)
	}
	return nil
}
