package websocket

import (
	"sync"

	"github.com/google/uuid"
)

type set map[string]struct{}

// Registry хранит членство живых соединений в комнатах. Принадлежит
// одному Hub и живет только в памяти процесса.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[uuid.UUID]struct{} // комната -> соединения
	conns map[uuid.UUID]set                 // соединение -> комнаты
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[uuid.UUID]struct{}),
		conns: make(map[uuid.UUID]set),
	}
}

// Join сообщает, что connID раньше не было в room
func (r *Registry) Join(connID uuid.UUID, room string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[connID][room]; ok {
		return false
	}
	if r.conns[connID] == nil {
		r.conns[connID] = make(set)
	}
	r.conns[connID][room] = struct{}{}

	if r.rooms[room] == nil {
		r.rooms[room] = make(map[uuid.UUID]struct{})
	}
	r.rooms[room][connID] = struct{}{}
	return true
}

// Leave сообщает, был ли connID в room. Выход из чужой комнаты ничего не делает.
func (r *Registry) Leave(connID uuid.UUID, room string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leaveLocked(connID, room)
}

func (r *Registry) leaveLocked(connID uuid.UUID, room string) bool {
	rooms, ok := r.conns[connID]
	if !ok {
		return false
	}
	if _, ok := rooms[room]; !ok {
		return false
	}

	delete(rooms, room)
	if len(rooms) == 0 {
		delete(r.conns, connID)
	}

	members := r.rooms[room]
	delete(members, connID)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
	return true
}

// Drop убирает connID из всех комнат и возвращает их
func (r *Registry) Drop(connID uuid.UUID) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	left := make([]string, 0, len(r.conns[connID]))
	for room := range r.conns[connID] {
		left = append(left, room)
	}
	for _, room := range left {
		r.leaveLocked(connID, room)
	}
	return left
}

func (r *Registry) RoomsOf(connID uuid.UUID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]string, 0, len(r.conns[connID]))
	for room := range r.conns[connID] {
		rooms = append(rooms, room)
	}
	return rooms
}

// Members возвращает соединения из любой из rooms без повторов
func (r *Registry) Members(rooms ...string) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, room := range rooms {
		for id := range r.rooms[room] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func (r *Registry) RoomSize(room string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}

func (r *Registry) Rooms() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
