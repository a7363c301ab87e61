package xkcd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/info.0.json":
			fmt.Fprint(w, `{"num":2000,"title":"xkcd Phone 2000","year":"2018","month":"5","day":"9","img":"https://imgs.xkcd.com/comics/xkcd_phone_2000.png","alt":"Our retina display"}`)
		case "/353/info.0.json":
			fmt.Fprint(w, `{"num":353,"title":"Python","year":"2007","month":"12","day":"5","img":"https://imgs.xkcd.com/comics/python.png","alt":""}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatest(t *testing.T) {
	c := NewClient(newTestServer(t).URL)

	comic, err := c.Latest(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if comic.Num != 2000 || comic.Title != "xkcd Phone 2000" {
		t.Errorf("comic = %+v", comic)
	}
}

func TestGetNotFound(t *testing.T) {
	c := NewClient(newTestServer(t).URL)

	if _, err := c.Get(context.Background(), 404); err == nil {
		t.Fatal("expected error for missing comic")
	}
}

func TestRandom(t *testing.T) {
	c := NewClient(newTestServer(t).URL)
	var bound int
	c.intn = func(n int) int {
		bound = n
		return 352
	}

	comic, err := c.Random(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if bound != 2000 {
		t.Errorf("random bound = %d, want 2000", bound)
	}
	if comic.Num != 353 {
		t.Errorf("num = %d, want 353", comic.Num)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		comic Comic
		want  []string
	}{
		{
			Comic{Num: 353, Title: "Python", Year: "2007", Month: "12", Day: "5", Img: "https://imgs.xkcd.com/comics/python.png"},
			[]string{
				"xkcd #353; \"Python\" (2007-12-05, xkcd.com/353)\nhttps://imgs.xkcd.com/comics/python.png",
				"(no alt text)",
			},
		},
		{
			Comic{Num: 1, Title: "Barrel - Part 1", Year: "2006", Month: "1", Day: "1", Img: "https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg", Alt: "Don't we all."},
			[]string{
				"xkcd #1; \"Barrel - Part 1\" (2006-01-01, xkcd.com/1)\nhttps://imgs.xkcd.com/comics/barrel_cropped_(1).jpg",
				"Alt text: Don't we all.",
			},
		},
	}
	for _, tt := range tests {
		got := Format(&tt.comic)
		if len(got) != 2 || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("Format(#%d) = %q, want %q", tt.comic.Num, got, tt.want)
		}
	}
}
