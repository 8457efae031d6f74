package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Время ожидания записи
	writeWait = 10 * time.Second

	// Время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Интервал отправки ping
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер сообщения
	maxMessageSize = 512 * 1024 // 512KB

	sendBufferSize = 256
)

// ClientMessageHandler обрабатывает входящие события, которые клиент не обработал сам
type ClientMessageHandler interface {
	HandleMessage(client *Client, env *Envelope) error
}

type Client struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	AccountKind string
	Conn        *websocket.Conn
	Hub         *Hub

	send   chan []byte
	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, accountID uuid.UUID, kind string) *Client {
	return &Client{
		ID:          uuid.New(),
		AccountID:   accountID,
		AccountKind: kind,
		Conn:        conn,
		Hub:         hub,
		send:        make(chan []byte, sendBufferSize),
	}
}

func (c *Client) ConnID() uuid.UUID { return c.ID }

// Deliver ставит кадр в очередь без блокировки
func (c *Client) Deliver(frame []byte) bool {
	return c.enqueue(frame) == nil
}

func (c *Client) enqueue(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}
	select {
	case c.send <- frame:
		return nil
	default:
		return ErrClientQueueFull
	}
}

func (c *Client) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// ReadPump читает события от клиента до разрыва соединения
func (c *Client) ReadPump(handler ClientMessageHandler) {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, frame, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		// битый кадр не рвет соединение
		var env Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			c.SendError(ErrInvalidMessage.Error())
			continue
		}

		switch env.Event {
		case EventPing:
			c.SendEvent(EventPong, nil)
			continue

		case EventJoinRoom:
			if err := c.Hub.JoinRoom(c, roomOf(env.Data)); err != nil {
				c.SendError(err.Error())
			}
			continue

		case EventLeaveRoom:
			if err := c.Hub.LeaveRoom(c, roomOf(env.Data)); err != nil {
				c.SendError(err.Error())
			}
			continue
		}

		if handler != nil {
			if err := handler.HandleMessage(c, &env); err != nil {
				log.Printf("Error handling %s from %s: %v", env.Event, c.ID, err)
				c.SendError(err.Error())
			}
		}
	}
}

// WritePump отправляет кадры клиенту и пингует его
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) SendEvent(event EventType, data interface{}) error {
	frame, err := Encode(event, data)
	if err != nil {
		return err
	}
	return c.enqueue(frame)
}

func (c *Client) SendError(errorMsg string) {
	c.SendEvent(EventError, map[string]string{
		"error": errorMsg,
	})
}

// roomOf принимает JSON строку или {"room": "..."}, иначе ""
func roomOf(data json.RawMessage) string {
	var room string
	if err := json.Unmarshal(data, &room); err == nil {
		return room
	}
	var obj struct {
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		return obj.Room
	}
	return ""
}
