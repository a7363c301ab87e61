package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EgorLis/euphbot/internal/xkcd"
)

func TestXkcdRules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info.0.json", "/1/info.0.json":
			fmt.Fprint(w, `{"num":1,"title":"Barrel - Part 1","year":"2006","month":"1","day":"1","img":"https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg","alt":"Don't we all."}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	rules := xkcdRules(context.Background(), xkcd.NewClient(srv.URL))

	tests := []struct {
		content string
		rule    int
	}{
		{"!totallyxkcd", 0},
		{"  !TotallyXKCD 1 ", 1},
		{"!totallyxkcd random", 2},
	}
	for _, tt := range tests {
		for i, r := range rules {
			m := r.Pattern.FindStringSubmatch(tt.content)
			if (m != nil) != (i == tt.rule) {
				t.Errorf("%q: rule %d matched = %v", tt.content, i, m != nil)
				continue
			}
			if m == nil {
				continue
			}
			got, err := r.Handler(m[1:], nil)
			if err != nil {
				t.Fatalf("%q: %v", tt.content, err)
			}
			if len(got) != 2 || got[1] != "Alt text: Don't we all." {
				t.Errorf("%q: replies = %q", tt.content, got)
			}
		}
	}

	if _, err := rules[1].Handler([]string{"404"}, nil); err == nil {
		t.Error("missing comic must fail")
	}
}

func TestXkcdRulesUseContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rules := xkcdRules(ctx, xkcd.NewClient(srv.URL))
	if _, err := rules[0].Handler(nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
