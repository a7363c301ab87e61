package euclient

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// типы пакетов, с которыми работает клиент
const (
	TypeNick      = "nick"
	TypeSend      = "send"
	TypePingReply = "ping-reply"

	TypePingEvent = "ping-event"
	TypeSendReply = "send-reply"
	TypeSendEvent = "send-event"
)

// Packet — конверт любого кадра Euphoria.
type Packet struct {
	ID    string          `json:"id,omitempty"`
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Decode раскладывает Data в v.
func (p *Packet) Decode(v any) error {
	if len(p.Data) == 0 {
		return fmt.Errorf("%w: %s: empty data", ErrProtocol, p.Type)
	}
	if err := json.Unmarshal(p.Data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProtocol, p.Type, err)
	}
	return nil
}

// Struct отдаёт Data как динамическую структуру (для обработчиков правил).
// Разбор через encoding/json, как и сам пакет: битый UTF-8 и одиночные
// суррогаты заменяются на U+FFFD, при повторе ключа побеждает последний.
func (p *Packet) Struct() (*structpb.Struct, error) {
	if len(p.Data) == 0 {
		return &structpb.Struct{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(p.Data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProtocol, p.Type, err)
	}
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProtocol, p.Type, err)
	}
	return st, nil
}

// ---------- исходящие ----------

type NickCommand struct {
	Name string `json:"name"`
}

type SendCommand struct {
	Content string `json:"content"`
	Parent  string `json:"parent"`
}

// PingReplyCommand возвращает серверу time из ping-event как есть.
type PingReplyCommand struct {
	Time json.RawMessage `json:"time"`
}

// ---------- входящие ----------

type PingEvent struct {
	Time json.RawMessage `json:"time"`
	Next json.RawMessage `json:"next,omitempty"`
}

type SessionView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ServerID  string `json:"server_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Message — содержимое send-event и send-reply.
type Message struct {
	ID      string      `json:"id"`
	Parent  string      `json:"parent,omitempty"`
	Time    int64       `json:"time,omitempty"`
	Sender  SessionView `json:"sender"`
	Content string      `json:"content"`
}
