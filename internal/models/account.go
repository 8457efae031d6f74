package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountKind string

const (
	KindTeacher AccountKind = "Teacher"
	KindParent  AccountKind = "Parent"
	// KindGroup допустим только как тип получателя
	KindGroup AccountKind = "Group"
)

// Account общий вид для учителей и родителей
type Account interface {
	AccountID() uuid.UUID
	Kind() AccountKind
	DisplayName() string
	PasswordDigest() string
}

type Teacher struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (t *Teacher) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Teacher) AccountID() uuid.UUID   { return t.ID }
func (t *Teacher) Kind() AccountKind      { return KindTeacher }
func (t *Teacher) DisplayName() string    { return displayName(t.FirstName, t.LastName) }
func (t *Teacher) PasswordDigest() string { return t.PasswordHash }

type Parent struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (p *Parent) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Parent) AccountID() uuid.UUID   { return p.ID }
func (p *Parent) Kind() AccountKind      { return KindParent }
func (p *Parent) DisplayName() string    { return displayName(p.FirstName, p.LastName) }
func (p *Parent) PasswordDigest() string { return p.PasswordHash }

func displayName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
