package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/classlink/internal/models"
)

func privateMessage(content, from string, fromKind models.AccountKind, to string, toKind models.AccountKind, classroom string) models.Message {
	return models.Message{
		Content:      content,
		Sender:       from,
		SenderKind:   fromKind,
		Receiver:     to,
		ReceiverKind: toKind,
		Classroom:    classroom,
	}
}

func groupMessage(content, teacher, classroom string) models.Message {
	return models.Message{
		Content:        content,
		Sender:         teacher,
		SenderKind:     models.KindTeacher,
		Receiver:       classroom,
		ReceiverKind:   models.KindGroup,
		Classroom:      classroom,
		IsGroupMessage: true,
	}
}

func contents(messages []models.Message) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = m.Content
	}
	return out
}

func TestSaveMessage_AssignsIdentityAndTimestamp(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	m := saveMessage(t, db, groupMessage("Hi", "T1", "C1"))
	require.NotEqual(t, uuid.Nil, m.ID)
	require.False(t, m.CreatedAt.IsZero())

	stored, err := db.GetMessage(ctx, m.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Hi", stored.Content)
	assert.True(t, stored.IsGroupMessage)
	assert.Equal(t, models.KindGroup, stored.ReceiverKind)

	_, err = db.GetMessage(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetClassroomMessages_FiltersByParticipant(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	saveMessage(t, db, groupMessage("welcome", "T1", "C1"))
	saveMessage(t, db, privateMessage("to A", "T1", models.KindTeacher, "A", models.KindParent, "C1"))
	saveMessage(t, db, privateMessage("from B", "B", models.KindParent, "T1", models.KindTeacher, "C1"))
	saveMessage(t, db, groupMessage("other class", "T2", "C2"))

	forA, err := db.GetClassroomMessages(ctx, "C1", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome", "to A"}, contents(forA))

	forTeacher, err := db.GetClassroomMessages(ctx, "C1", "T1")
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome", "to A", "from B"}, contents(forTeacher))

	// C is in the classroom but took part in no private exchange.
	forC, err := db.GetClassroomMessages(ctx, "C1", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome"}, contents(forC))
}

func TestGetPrivateMessages_BothDirectionsOrdered(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	saveMessage(t, db, privateMessage("1", "T1", models.KindTeacher, "P1", models.KindParent, "C1"))
	saveMessage(t, db, privateMessage("2", "P1", models.KindParent, "T1", models.KindTeacher, "C1"))
	saveMessage(t, db, privateMessage("elsewhere", "T1", models.KindTeacher, "P2", models.KindParent, "C1"))
	saveMessage(t, db, groupMessage("group", "T1", "C1"))
	saveMessage(t, db, privateMessage("3", "T1", models.KindTeacher, "P1", models.KindParent, "C2"))

	fromTeacher, err := db.GetPrivateMessages(ctx, "T1", "P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, contents(fromTeacher))

	fromParent, err := db.GetPrivateMessages(ctx, "P1", "T1")
	require.NoError(t, err)
	assert.Equal(t, contents(fromTeacher), contents(fromParent))

	none, err := db.GetPrivateMessages(ctx, "P2", "P1")
	require.NoError(t, err)
	assert.Empty(t, none)
}
