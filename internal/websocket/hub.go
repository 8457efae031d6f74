package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Conn - живое соединение клиента с точки зрения Hub
type Conn interface {
	ConnID() uuid.UUID
	// Deliver ставит кадр в очередь без блокировки и сообщает, принят ли он
	Deliver(frame []byte) bool
	// Shutdown останавливает запись. Вызывается один раз из Hub.
	Shutdown()
}

// Hub владеет соединениями и их комнатами, делает рассылку
type Hub struct {
	registry *Registry

	mu    sync.RWMutex
	conns map[uuid.UUID]Conn

	stopOnce sync.Once
}

// NewHub создает новый Hub поверх registry
func NewHub(registry *Registry) *Hub {
	return &Hub{
		registry: registry,
		conns:    make(map[uuid.UUID]Conn),
	}
}

// Run блокируется до отмены ctx, затем закрывает все соединения
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.Stop()
}

// Stop закрывает все соединения
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		for id, conn := range h.conns {
			h.registry.Drop(id)
			conn.Shutdown()
			delete(h.conns, id)
		}
		log.Printf("Hub stopped")
	})
}

// Register регистрирует нового клиента
func (h *Hub) Register(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn.ConnID()] = conn
	log.Printf("Connection registered: %s", conn.ConnID())
}

// Unregister убирает conn из всех комнат и закрывает его. Повторный вызов безопасен.
func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := conn.ConnID()
	if _, ok := h.conns[id]; !ok {
		return
	}

	rooms := h.registry.Drop(id)
	delete(h.conns, id)
	conn.Shutdown()

	log.Printf("Connection unregistered: %s (left %d rooms)", id, len(rooms))
}

// JoinRoom добавляет соединение в комнату; повторный вызов ничего не меняет
func (h *Hub) JoinRoom(conn Conn, room string) error {
	if room == "" {
		return ErrInvalidRoom
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.conns[conn.ConnID()]; !ok {
		return ErrNotRegistered
	}
	if h.registry.Join(conn.ConnID(), room) {
		log.Printf("Connection %s joined room %s", conn.ConnID(), room)
	}
	return nil
}

// LeaveRoom удаляет соединение из комнаты; выход из чужой комнаты не ошибка
func (h *Hub) LeaveRoom(conn Conn, room string) error {
	if room == "" {
		return ErrInvalidRoom
	}
	if h.registry.Leave(conn.ConnID(), room) {
		log.Printf("Connection %s left room %s", conn.ConnID(), room)
	}
	return nil
}

// Emit кодирует событие один раз и шлет всем соединениям из rooms, каждому
// не больше одного раза. Возвращает число соединений, принявших кадр.
func (h *Hub) Emit(event EventType, data interface{}, rooms ...string) int {
	frame, err := Encode(event, data)
	if err != nil {
		log.Printf("Failed to encode %s: %v", event, err)
		return 0
	}
	return h.EmitFrame(frame, rooms...)
}

func (h *Hub) EmitFrame(frame []byte, rooms ...string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, id := range h.registry.Members(rooms...) {
		conn, ok := h.conns[id]
		if !ok {
			continue
		}
		if conn.Deliver(frame) {
			delivered++
		} else {
			log.Printf("Connection %s send queue full, frame dropped", id)
		}
	}
	return delivered
}

func (h *Hub) RoomsOf(conn Conn) []string {
	return h.registry.RoomsOf(conn.ConnID())
}

func (h *Hub) RoomSize(room string) int {
	return h.registry.RoomSize(room)
}

func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
