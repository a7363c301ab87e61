package euclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func TestConnectOverWebsocket(t *testing.T) {
	frames := make(chan Packet, 8)
	paths := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type":"ping-event","data":{"time":42,"next":72}}`))
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var p Packet
			if err := json.Unmarshal(data, &p); err == nil {
				frames <- p
			}
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := Connect(ctx, Config{
		Room:     "test",
		Nick:     "Bot",
		Host:     strings.TrimPrefix(srv.URL, "http://"),
		Insecure: true,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer s.Close()

	if got := <-paths; got != "/room/test/ws" {
		t.Errorf("path = %q", got)
	}
	if p := <-frames; p.Type != TypeNick {
		t.Fatalf("first frame = %q, want nick", p.Type)
	}

	p, err := s.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	var ev PingEvent
	if err := p.Decode(&ev); err != nil {
		t.Fatal(err)
	}
	if err := s.PingReply(ev.Time); err != nil {
		t.Fatal(err)
	}

	select {
	case reply := <-frames:
		if reply.Type != TypePingReply || string(reply.Data) != `{"time":42}` {
			t.Errorf("reply = %s %s", reply.Type, reply.Data)
		}
	case <-ctx.Done():
		t.Fatal("no ping-reply received")
	}
}

func TestConnectFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Connect(context.Background(), Config{
		Room:     "test",
		Nick:     "Bot",
		Host:     strings.TrimPrefix(srv.URL, "http://"),
		Insecure: true,
	})
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("err = %v, want ErrConnection", err)
	}
}
