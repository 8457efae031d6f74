package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/thereayou/classlink/internal/models"
)

type MessageStore interface {
	SaveMessage(ctx context.Context, message *models.Message) error
	GetClassroomMessages(ctx context.Context, classroomID, requester string) ([]models.Message, error)
	GetPrivateMessages(ctx context.Context, requester, counterpart string) ([]models.Message, error)
}

type AccountStore interface {
	FindAccount(ctx context.Context, kind models.AccountKind, id uuid.UUID) (models.Account, error)
	FindAccountByEmail(ctx context.Context, kind models.AccountKind, email string) (models.Account, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
