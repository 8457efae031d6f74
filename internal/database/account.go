package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/thereayou/classlink/internal/models"
)

func newAccount(kind models.AccountKind) (models.Account, error) {
	switch kind {
	case models.KindTeacher:
		return &models.Teacher{}, nil
	case models.KindParent:
		return &models.Parent{}, nil
	}
	return nil, errors.Wrap(ErrUnknownKind, string(kind))
}

// FindAccount ищет id в таблице для kind
func (d *Database) FindAccount(ctx context.Context, kind models.AccountKind, id uuid.UUID) (models.Account, error) {
	account, err := newAccount(kind)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).First(account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "find %s", kind)
	}
	return account, nil
}

func (d *Database) FindAccountByEmail(ctx context.Context, kind models.AccountKind, email string) (models.Account, error) {
	account, err := newAccount(kind)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "find %s by email", kind)
	}
	return account, nil
}

func (d *Database) SaveTeacher(ctx context.Context, teacher *models.Teacher) error {
	return errors.Wrap(d.db.WithContext(ctx).Create(teacher).Error, "save teacher")
}

func (d *Database) SaveParent(ctx context.Context, parent *models.Parent) error {
	return errors.Wrap(d.db.WithContext(ctx).Create(parent).Error, "save parent")
}
