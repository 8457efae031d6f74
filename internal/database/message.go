package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/thereayou/classlink/internal/models"
)

// SaveMessage сохраняет сообщение и проставляет время создания
func (d *Database) SaveMessage(ctx context.Context, message *models.Message) error {
	message.CreatedAt = time.Now().UTC()
	if err := d.db.WithContext(ctx).Create(message).Error; err != nil {
		return errors.Wrap(err, "save message")
	}
	return nil
}

func (d *Database) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get message")
	}
	return &message, nil
}

// GetClassroomMessages возвращает историю класса, видимую requester:
// групповые сообщения и личные, где он отправитель или получатель.
func (d *Database) GetClassroomMessages(ctx context.Context, classroomID, requester string) ([]models.Message, error) {
	var messages []models.Message

	visible := d.db.
		Where("sender = ?", requester).
		Or("receiver = ?", requester).
		Or("is_group_message = ?", true)

	err := d.db.WithContext(ctx).
		Where("classroom = ?", classroomID).
		Where(visible).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "get classroom messages")
	}

	return messages, nil
}

// GetPrivateMessages возвращает личную переписку requester и counterpart
func (d *Database) GetPrivateMessages(ctx context.Context, requester, counterpart string) ([]models.Message, error) {
	var messages []models.Message

	pair := d.db.
		Where("sender = ? AND receiver = ?", requester, counterpart).
		Or("sender = ? AND receiver = ?", counterpart, requester)

	err := d.db.WithContext(ctx).
		Where("is_group_message = ?", false).
		Where(pair).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "get private messages")
	}

	return messages, nil
}
