package euclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

const (
	DefaultHost = "euphoria.io"

	readLimit        = 1 << 20
	handshakeTimeout = 10 * time.Second
)

// RoomURL формирует адрес ws/wss комнаты по конфигурации.
func (cfg Config) RoomURL() string {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	scheme := "wss"
	if cfg.Insecure {
		scheme = "ws"
	}
	u := url.URL{Scheme: scheme, Host: host, Path: "/room/" + cfg.Room + "/ws"}
	return u.String()
}

// Connect открывает соединение с комнатой и представляется ником.
func Connect(ctx context.Context, cfg Config) (*Session, error) {
	conn, err := dial(ctx, cfg.RoomURL())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnection, cfg.RoomURL(), err)
	}
	return NewSession(conn, cfg)
}

func dial(ctx context.Context, addr string) (*websocket.Conn, error) {
	d := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
	}
	conn, resp, err := d.DialContext(ctx, addr, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(readLimit)
	return conn, nil
}
