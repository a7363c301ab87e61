package euclient

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var deltaUnits = []struct {
	seconds float64
	suffix  string
}{
	{86400, "d"},
	{3600, "h"},
	{60, "m"},
}

// FormatDelta печатает интервал как "[Nd ][Nh ][Nm ][N.NNs]".
// Дни/часы/минуты отбрасывают дробную часть, нулевые компоненты опускаются.
// "0s" печатается только когда других компонент нет: 172800s -> "2d".
func FormatDelta(d time.Duration) string {
	seconds := math.Max(d.Seconds(), 0)

	var parts []string
	for _, u := range deltaUnits {
		if seconds >= u.seconds {
			parts = append(parts, fmt.Sprintf("%d%s", int64(seconds/u.seconds), u.suffix))
			seconds = math.Mod(seconds, u.seconds)
		}
	}
	if seconds != 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// FormatTime печатает момент времени в UTC: "2006-01-02 15:04:05 UTC".
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05") + " UTC"
}
