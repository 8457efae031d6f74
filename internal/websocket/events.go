package websocket

import (
	"encoding/json"
	"time"
)

// EventType определяет типы событий
type EventType string

const (
	// Входящие
	EventJoinRoom     EventType = "joinRoom"
	EventLeaveRoom    EventType = "leaveRoom"
	EventSendMessage  EventType = "sendMessage"
	EventCreateEvent  EventType = "createEvent"
	EventUpdateEvent  EventType = "updateEvent"
	EventCreateReport EventType = "createReport"
	EventUpdateReport EventType = "updateReport"
	EventPing         EventType = "ping"

	// Исходящие
	EventReceiveMessage EventType = "receiveMessage"
	EventNewMessage     EventType = "newMessage"
	EventNewEvent       EventType = "newEvent"
	EventUpdatedEvent   EventType = "updatedEvent"
	EventNewReport      EventType = "newReport"
	EventError          EventType = "error"
	EventPong           EventType = "pong"
)

// Envelope - формат кадра в обе стороны
type Envelope struct {
	Event     EventType       `json:"event"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func Encode(event EventType, data interface{}) ([]byte, error) {
	env := Envelope{Event: event, Timestamp: time.Now().UTC()}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		env.Data = raw
	}
	return json.Marshal(env)
}

// MessageRooms возвращает комнаты для рассылки: комнату класса для групповых
// сообщений, иначе комнаты получателя и отправителя.
func MessageRooms(isGroup bool, classroom, sender, receiver string) []string {
	if isGroup {
		return []string{classroom}
	}
	rooms := make([]string, 0, 2)
	if receiver != "" {
		rooms = append(rooms, receiver)
	}
	if sender != "" && sender != receiver {
		rooms = append(rooms, sender)
	}
	return rooms
}
