package websocket

import "errors"

var (
	ErrClientQueueFull = errors.New("client message queue is full")
	ErrClientClosed    = errors.New("client is closed")
	ErrInvalidMessage  = errors.New("invalid message format")
	ErrInvalidRoom     = errors.New("invalid room id")
	ErrNotRegistered   = errors.New("connection is not registered")
)
