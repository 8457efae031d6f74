package notify

import "time"

type Kind string

const (
	KindMessage Kind = "message"
	KindEvent   Kind = "event"
	KindReport  Kind = "report"
)

const UnknownSender = "Unknown"

// Notification - данные событий newMessage, newEvent, updatedEvent и newReport.
// На сервере не хранится.
type Notification struct {
	Type       Kind      `json:"type"`
	Content    string    `json:"content"`
	SenderName string    `json:"senderName,omitempty"`
	Title      string    `json:"title,omitempty"`
	Classroom  string    `json:"classroom,omitempty"`
	MessageID  string    `json:"messageId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// MessageNotice описывает сохраненное и разосланное сообщение
type MessageNotice struct {
	MessageID      string
	Sender         string
	SenderLabel    string // имя от клиента, если отправителя не удалось найти
	Receiver       string
	Classroom      string
	IsGroupMessage bool
}

type EventNotice struct {
	Title     string
	Classroom string
}

type ReportNotice struct {
	Title     string
	Classroom string
	StudentID string
}
