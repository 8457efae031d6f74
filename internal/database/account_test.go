package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/classlink/internal/models"
)

func TestFindAccount_PerKind(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	teacher := &models.Teacher{FirstName: "Ada", LastName: "Lovelace", Email: "ada@school.test", PasswordHash: "x"}
	parent := &models.Parent{FirstName: "Alan", LastName: "Turing", Email: "alan@home.test", PasswordHash: "y"}
	require.NoError(t, db.SaveTeacher(ctx, teacher))
	require.NoError(t, db.SaveParent(ctx, parent))

	found, err := db.FindAccount(ctx, models.KindTeacher, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, models.KindTeacher, found.Kind())
	assert.Equal(t, "Ada Lovelace", found.DisplayName())

	// Tables are independent: a parent id is unknown to the teacher table.
	_, err = db.FindAccount(ctx, models.KindTeacher, parent.ID)
	require.ErrorIs(t, err, ErrNotFound)

	byEmail, err := db.FindAccountByEmail(ctx, models.KindParent, "alan@home.test")
	require.NoError(t, err)
	assert.Equal(t, parent.ID, byEmail.AccountID())
	assert.Equal(t, "y", byEmail.PasswordDigest())

	_, err = db.FindAccount(ctx, models.KindGroup, uuid.New())
	require.ErrorIs(t, err, ErrUnknownKind)
}
