// Package identity превращает id отправителя в отображаемое имя, перебирая
// типы аккаунтов, которые могут писать сообщения.
package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/thereayou/classlink/internal/database"
	"github.com/thereayou/classlink/internal/models"
	"github.com/thereayou/classlink/internal/services"
)

var ErrMalformedID = errors.New("malformed account id")

// Result либо Found с типом аккаунта и именем, либо не найден
type Result struct {
	Found       bool
	Kind        models.AccountKind
	DisplayName string
}

func Found(kind models.AccountKind, displayName string) Result {
	return Result{Found: true, Kind: kind, DisplayName: displayName}
}

func NotFound() Result {
	return Result{}
}

type Resolver struct {
	accounts services.AccountStore
	kinds    []models.AccountKind
}

// NewResolver ищет по kinds по порядку; по умолчанию учителя, затем родители
func NewResolver(accounts services.AccountStore, kinds ...models.AccountKind) *Resolver {
	if len(kinds) == 0 {
		kinds = []models.AccountKind{models.KindTeacher, models.KindParent}
	}
	return &Resolver{accounts: accounts, kinds: kinds}
}

// Resolve возвращает NotFound, если accountID нет ни в одной таблице.
// Ошибки хранилища и битые id возвращаются как ошибки.
func (r *Resolver) Resolve(ctx context.Context, accountID string) (Result, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return NotFound(), errors.Wrap(ErrMalformedID, accountID)
	}

	for _, kind := range r.kinds {
		account, err := r.accounts.FindAccount(ctx, kind, id)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return NotFound(), errors.Wrapf(err, "resolve %s", kind)
		}
		return Found(account.Kind(), account.DisplayName()), nil
	}

	return NotFound(), nil
}
