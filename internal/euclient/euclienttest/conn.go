// Package euclienttest даёт in-memory Transport для тестов сессии и бота.
package euclienttest

import (
	"encoding/json"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Frame — исходящий кадр, как его видит сервер.
type Frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Conn — фейковое websocket-соединение. Входящие кадры кладутся через Push,
// исходящие копятся и читаются через Frames.
type Conn struct {
	in   chan []byte
	done chan struct{}
	once sync.Once

	mu      sync.Mutex
	sent    [][]byte
	closed  bool
	closes  int
	control []int
}

func NewConn() *Conn {
	return &Conn{
		in:   make(chan []byte, 64),
		done: make(chan struct{}),
	}
}

// Push ставит сырой кадр в очередь на чтение.
func (c *Conn) Push(frame string) {
	c.in <- []byte(frame)
}

// PushPacket ставит в очередь пакет {"type":typ,"data":data}.
func (c *Conn) PushPacket(typ string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	frame, err := json.Marshal(Frame{Type: typ, Data: raw})
	if err != nil {
		panic(err)
	}
	c.in <- frame
}

// Drop имитирует обрыв соединения со стороны сервера.
func (c *Conn) Drop() {
	c.once.Do(func() { close(c.done) })
}

func (c *Conn) ReadMessage() (int, []byte, error) {
	select {
	case <-c.done:
		return 0, nil, net.ErrClosed
	default:
	}
	select {
	case f := <-c.in:
		return websocket.TextMessage, f, nil
	case <-c.done:
		return 0, nil, net.ErrClosed
	}
}

func (c *Conn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return net.ErrClosed
	}
	c.sent = append(c.sent, append([]byte(nil), data...))
	return nil
}

func (c *Conn) WriteControl(messageType int, _ []byte, _ time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return net.ErrClosed
	}
	c.control = append(c.control, messageType)
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error { return nil }

func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.closes++
	c.mu.Unlock()
	c.Drop()
	return nil
}

// Closes — сколько раз вызывали Close.
func (c *Conn) Closes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}

// Frames возвращает все отправленные кадры по порядку.
func (c *Conn) Frames() []Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Frame, 0, len(c.sent))
	for _, raw := range c.sent {
		var f Frame
		if err := json.Unmarshal(raw, &f); err != nil {
			panic(err)
		}
		out = append(out, f)
	}
	return out
}

// Sends возвращает содержимое отправленных пакетов send (без nick и ping-reply).
func (c *Conn) Sends() []Send {
	var out []Send
	for _, f := range c.Frames() {
		if f.Type != "send" {
			continue
		}
		var s Send
		if err := json.Unmarshal(f.Data, &s); err != nil {
			panic(err)
		}
		out = append(out, s)
	}
	return out
}

type Send struct {
	Content string `json:"content"`
	Parent  string `json:"parent"`
}
