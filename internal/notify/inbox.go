package notify

import "sync"

const InboxLimit = 10

// Inbox - сторона получателя: новые сверху, не больше InboxLimit,
// счетчик непрочитанных сбрасывается при открытии списка.
type Inbox struct {
	mu     sync.Mutex
	items  []Notification
	unread int
}

func NewInbox() *Inbox {
	return &Inbox{}
}

func (in *Inbox) Add(n Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()

	n.Read = false
	in.items = append([]Notification{n}, in.items...)
	if len(in.items) > InboxLimit {
		in.items = in.items[:InboxLimit]
	}
	in.unread++
}

func (in *Inbox) Items() []Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]Notification(nil), in.items...)
}

func (in *Inbox) Unread() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.unread
}

// MarkAllRead помечает все прочитанным и возвращает список
func (in *Inbox) MarkAllRead() []Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	for i := range in.items {
		in.items[i].Read = true
	}
	in.unread = 0
	return append([]Notification(nil), in.items...)
}
