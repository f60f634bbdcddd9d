package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TruncateDay returns the UTC midnight of t's calendar date.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseWeekday accepts a weekday name ("monday", "Mon") or a number
// counted from Monday (0 = Monday ... 6 = Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: %d is outside 0-6", ErrInvalidWeekday, n)
		}
		return time.Weekday((n + 1) % 7), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// Dates returns the record dates in order.
func (s TrafficSeries) Dates() []time.Time {
	out := make([]time.Time, len(s))
	for i, r := range s {
		out[i] = r.Date
	}
	return out
}

// Last returns the record with the maximum date.
func (s TrafficSeries) Last() (TrafficRecord, bool) {
	if len(s) == 0 {
		return TrafficRecord{}, false
	}
	last := s[0]
	for _, r := range s[1:] {
		if !r.Date.Before(last.Date) {
			last = r
		}
	}
	return last, true
}
