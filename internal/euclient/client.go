package euclient

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Transport — сторона WebSocket, которой пользуется сессия.
// *websocket.Conn ему удовлетворяет.
type Transport interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type Config struct {
	Room     string `json:"room"`
	Nick     string `json:"nick"`
	Host     string `json:"host"`     // по умолчанию euphoria.io
	Insecure bool   `json:"insecure"` // ws:// вместо wss://

	Logger *slog.Logger     `json:"-"`
	Now    func() time.Time `json:"-"`
}

type Session struct {
	nick      string
	room      string
	startTime time.Time
	now       func() time.Time
	log       *slog.Logger

	conn      Transport
	wmu       sync.Mutex // сериализует запись в websocket
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error

	paused      bool
	lastMessage *Packet
}

// NewSession оборачивает уже открытое соединение и сразу отправляет пакет
// nick. Никакой другой трафик до него не уходит. При ошибке соединение
// закрывается.
func NewSession(conn Transport, cfg Config) (*Session, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		nick:      cfg.Nick,
		room:      cfg.Room,
		startTime: now(),
		now:       now,
		log:       logger.With("room", cfg.Room, "nick", cfg.Nick),
		conn:      conn,
	}
	if err := s.send(TypeNick, NickCommand{Name: cfg.Nick}); err != nil {
		_ = s.Close()
		return nil, err
	}
	s.log.Info("connected")
	return s, nil
}

func (s *Session) Nick() string         { return s.nick }
func (s *Session) Room() string         { return s.room }
func (s *Session) StartTime() time.Time { return s.startTime }
func (s *Session) Paused() bool         { return s.paused }
func (s *Session) SetPaused(v bool)     { s.paused = v }

// LastMessage — последний send-reply от сервера (или nil).
func (s *Session) LastMessage() *Packet { return s.lastMessage }

func (s *Session) RecordReply(p *Packet) { s.lastMessage = p }

func (s *Session) IsConnected() bool {
	return s.conn != nil && !s.closed.Load()
}

// Post отправляет сообщение в комнату. Пустое сообщение не отправляется.
func (s *Session) Post(message, parent string) error {
	if message == "" {
		return nil
	}
	if err := s.send(TypeSend, SendCommand{Content: message, Parent: parent}); err != nil {
		return err
	}
	s.log.Info("sent message", "content", message, "parent", parent)
	return nil
}

// PingReply эхом возвращает серверу time из ping-event.
func (s *Session) PingReply(t json.RawMessage) error {
	return s.send(TypePingReply, PingReplyCommand{Time: t})
}

// ReadPacket блокируется до прихода одного кадра. Битый кадр даёт
// ErrProtocol (соединение живо), обрыв — ErrConnectionClosed (сессия
// закрывается).
func (s *Session) ReadPacket() (*Packet, error) {
	if !s.IsConnected() {
		return nil, ErrConnectionClosed
	}
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}
	var p Packet
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if p.Type == "" {
		return nil, fmt.Errorf("%w: packet without type", ErrProtocol)
	}
	s.log.Debug("received packet", "type", p.Type)
	return &p, nil
}

// Close закрывает соединение ровно один раз, повторные вызовы ничего не делают.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.conn == nil {
			return
		}
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
			time.Now().Add(500*time.Millisecond))
		s.closeErr = s.conn.Close()
		s.log.Info("disconnected")
	})
	return s.closeErr
}

// Uptime — строка для !uptime.
func (s *Session) Uptime() string {
	return fmt.Sprintf("/me has been up since %s (%s)",
		FormatTime(s.startTime), FormatDelta(s.now().Sub(s.startTime)))
}

func (s *Session) send(typ string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProtocol, typ, err)
	}
	frame, err := json.Marshal(Packet{Type: typ, Data: raw})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProtocol, typ, err)
	}
	if !s.IsConnected() {
		return ErrConnectionClosed
	}

	s.wmu.Lock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	werr := s.conn.WriteMessage(websocket.TextMessage, frame)
	s.wmu.Unlock()

	if werr != nil {
		return fmt.Errorf("%w: %w", ErrConnectionClosed, werr)
	}
	return nil
}
