package mood

import (
	"fmt"
	"math"
	"time"
)

const DefaultPrefix = "drift-mood-"

// Clock reports the current local time.
type Clock func() time.Time

func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// KeyForDate builds PREFIX + YYYY-MM-DD from t's calendar date in t's own
// location.
func KeyForDate(prefix string, t time.Time) string {
	return fmt.Sprintf("%s%04d-%02d-%02d", prefix, t.Year(), int(t.Month()), t.Day())
}

func TodayKey(prefix string, clock Clock) string {
	return KeyForDate(prefix, clock.Now())
}

func OffsetDate(clock Clock, days int) time.Time {
	return clock.Now().AddDate(0, 0, days)
}

// FormatDateLabel names t relative to now: "Today", "Yesterday", or a short
// month/day form such as "Mar 4".
func FormatDateLabel(t time.Time, now time.Time) string {
	switch daysBetween(now, t) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	}
	return t.Format("Jan 2")
}

// daysBetween returns the whole number of calendar days from a to b. Both
// are truncated to midnight in their location and the difference rounded,
// so 23 and 25 hour days still count as one.
func daysBetween(a, b time.Time) int {
	diff := midnight(b).Sub(midnight(a))
	return int(math.Round(diff.Hours() / 24))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
