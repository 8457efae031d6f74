package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message не меняется после сохранения. У групповых Receiver равен Classroom.
type Message struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Content        string      `gorm:"not null"`
	Sender         string      `gorm:"index;not null"`
	SenderKind     AccountKind `gorm:"not null"`
	Receiver       string      `gorm:"index;not null"`
	ReceiverKind   AccountKind `gorm:"not null"`
	Classroom      string      `gorm:"index;not null"`
	IsGroupMessage bool        `gorm:"not null"`
	CreatedAt      time.Time   `gorm:"index"`
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
