package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox_NewestFirstCapped(t *testing.T) {
	in := NewInbox()
	for i := 0; i < 12; i++ {
		in.Add(Notification{Type: KindMessage, Content: fmt.Sprint(i), Read: true})
	}

	items := in.Items()
	require.Len(t, items, InboxLimit)
	assert.Equal(t, "11", items[0].Content)
	assert.Equal(t, "2", items[InboxLimit-1].Content)
	assert.False(t, items[0].Read)
	assert.Equal(t, 12, in.Unread())
}

func TestInbox_MarkAllReadResetsUnread(t *testing.T) {
	in := NewInbox()
	in.Add(Notification{Type: KindEvent, Content: "New event: Trip"})
	in.Add(Notification{Type: KindReport, Content: "New report available"})

	opened := in.MarkAllRead()
	require.Len(t, opened, 2)
	assert.True(t, opened[0].Read)
	assert.Zero(t, in.Unread())

	in.Add(Notification{Type: KindMessage})
	assert.Equal(t, 1, in.Unread())
	assert.False(t, in.Items()[0].Read)
	assert.True(t, in.Items()[1].Read)
}
