package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/thereayou/classlink/internal/identity"
	"github.com/thereayou/classlink/internal/logger"
	"github.com/thereayou/classlink/internal/websocket"
)

// Notifier вызывают обработчики после успешной записи.
// Вызовы не блокируют и не сообщают о доставке.
type Notifier interface {
	MessagePosted(n MessageNotice)
	EventCreated(n EventNotice)
	EventUpdated(n EventNotice)
	ReportCreated(n ReportNotice)
	ReportUpdated(n ReportNotice)
}

type Emitter interface {
	Emit(event websocket.EventType, data interface{}, rooms ...string) int
}

type IdentityResolver interface {
	Resolve(ctx context.Context, accountID string) (identity.Result, error)
}

type ActionKind int

const (
	ActionMessagePosted ActionKind = iota
	ActionEventCreated
	ActionEventUpdated
	ActionReportCreated
	ActionReportUpdated
)

func (k ActionKind) String() string {
	switch k {
	case ActionMessagePosted:
		return "message posted"
	case ActionEventCreated:
		return "event created"
	case ActionEventUpdated:
		return "event updated"
	case ActionReportCreated:
		return "report created"
	case ActionReportUpdated:
		return "report updated"
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action - одно событие в очереди; заполнено только поле для Kind
type Action struct {
	Kind    ActionKind
	Message MessageNotice
	Event   EventNotice
	Report  ReportNotice
}

// Projector превращает события в уведомления и шлет их в те же комнаты,
// что и сами сообщения.
type Projector struct {
	emitter  Emitter
	resolver IdentityResolver
	log      *logger.Logger
	queue    chan Action
	now      func() time.Time
}

var _ Notifier = (*Projector)(nil)

func NewProjector(emitter Emitter, resolver IdentityResolver, log *logger.Logger, queueSize int) *Projector {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Projector{
		emitter:  emitter,
		resolver: resolver,
		log:      log,
		queue:    make(chan Action, queueSize),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run обрабатывает очередь до отмены ctx
func (p *Projector) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-p.queue:
			p.Handle(ctx, a)
		}
	}
}

// Publish ставит a в очередь без блокировки; при полной очереди событие теряется
func (p *Projector) Publish(a Action) bool {
	select {
	case p.queue <- a:
		return true
	default:
		p.log.Warn("notification queue full, dropping %s", a.Kind)
		return false
	}
}

func (p *Projector) MessagePosted(n MessageNotice) {
	p.Publish(Action{Kind: ActionMessagePosted, Message: n})
}

func (p *Projector) EventCreated(n EventNotice) {
	p.Publish(Action{Kind: ActionEventCreated, Event: n})
}

func (p *Projector) EventUpdated(n EventNotice) {
	p.Publish(Action{Kind: ActionEventUpdated, Event: n})
}

func (p *Projector) ReportCreated(n ReportNotice) {
	p.Publish(Action{Kind: ActionReportCreated, Report: n})
}

func (p *Projector) ReportUpdated(n ReportNotice) {
	p.Publish(Action{Kind: ActionReportUpdated, Report: n})
}

// Handle собирает уведомление для a, рассылает его и возвращает вместе
// с числом соединений, которые его получили.
func (p *Projector) Handle(ctx context.Context, a Action) (Notification, int) {
	var (
		event websocket.EventType
		rooms []string
		n     = Notification{Timestamp: p.now()}
	)

	switch a.Kind {
	case ActionMessagePosted:
		m := a.Message
		event = websocket.EventNewMessage
		rooms = websocket.MessageRooms(m.IsGroupMessage, m.Classroom, m.Sender, m.Receiver)
		n.Type = KindMessage
		n.SenderName = p.senderName(ctx, m)
		n.Content = "New message from " + n.SenderName
		n.Classroom = m.Classroom
		n.MessageID = m.MessageID

	case ActionEventCreated, ActionEventUpdated:
		e := a.Event
		event, n.Content = websocket.EventNewEvent, "New event: "+e.Title
		if a.Kind == ActionEventUpdated {
			event, n.Content = websocket.EventUpdatedEvent, "Event updated: "+e.Title
		}
		rooms = []string{e.Classroom}
		n.Type = KindEvent
		n.Title = e.Title
		n.Classroom = e.Classroom

	case ActionReportCreated, ActionReportUpdated:
		r := a.Report
		event, n.Content = websocket.EventNewReport, "New report available"
		if a.Kind == ActionReportUpdated {
			n.Content = "Report updated"
		}
		rooms = []string{r.Classroom}
		n.Type = KindReport
		n.Title = r.Title
		n.Classroom = r.Classroom

	default:
		p.log.Warn("unknown notification action %s", a.Kind)
		return Notification{}, 0
	}

	return n, p.emitter.Emit(event, n, rooms...)
}

// senderName не падает: при ошибке или неизвестном отправителе берется
// имя от клиента, затем UnknownSender.
func (p *Projector) senderName(ctx context.Context, m MessageNotice) (name string) {
	fallback := m.SenderLabel
	if fallback == "" {
		fallback = UnknownSender
	}
	if m.Sender == "" || p.resolver == nil {
		return fallback
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("sender lookup for %s panicked: %v", m.Sender, r)
			name = fallback
		}
	}()

	res, err := p.resolver.Resolve(ctx, m.Sender)
	if err != nil {
		p.log.Warn("cannot resolve sender %s: %v", m.Sender, err)
		return fallback
	}
	if !res.Found {
		return fallback
	}
	return res.DisplayName
}
