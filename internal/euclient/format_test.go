package euclient

import (
	"testing"
	"time"
)

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{500 * time.Millisecond, "0.50s"},
		{60 * time.Second, "1m"},
		{time.Hour, "1h"},
		{172800 * time.Second, "2d"},
		{3661200 * time.Millisecond, "1h 1m 1.20s"},
		{90061500 * time.Millisecond, "1d 1h 1m 1.50s"},
		{86400*time.Second + 5*time.Second, "1d 5.00s"},
		{-time.Second, "0s"},
	}
	for _, tt := range tests {
		if got := FormatDelta(tt.in); got != tt.want {
			t.Errorf("FormatDelta(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2017, 3, 4, 8, 5, 9, 0, loc)
	if got, want := FormatTime(in), "2017-03-04 05:05:09 UTC"; got != want {
		t.Errorf("FormatTime = %q, want %q", got, want)
	}
}
