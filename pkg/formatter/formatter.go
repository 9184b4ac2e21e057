package formatter

import (
	"strconv"
	"strings"
	"time"
)

const (
	week  = 7 * 24 * time.Hour
	month = 30 * 24 * time.Hour
	year  = 365 * 24 * time.Hour

	// Epoch values above this are treated as milliseconds.
	millisThreshold = 1_000_000_000_000
)

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp normalises a raw host timestamp.
// Digits only is an epoch (seconds, or milliseconds when large enough),
// anything else must match one of the ISO-like layouts.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		if n > millisThreshold {
			return time.UnixMilli(n), true
		}
		return time.Unix(n, 0), true
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RelativeTime turns a raw timestamp into a short label relative to now:
// "now", "5min", "3h", "2d", "1s" (weeks), "4m" (months), "1a" (years).
// Input that can't be parsed, including labels that are already relative, is returned as is.
// Example: RelativeTime("1700000000", now) -> "3d"
func RelativeTime(raw string, now time.Time) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return raw
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return strconv.Itoa(int(d/time.Minute)) + "min"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d/time.Hour)) + "h"
	case d < week:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d"
	case d < month:
		return strconv.Itoa(int(d/week)) + "s"
	case d < year:
		return strconv.Itoa(int(d/month)) + "m"
	default:
		return strconv.Itoa(int(d/year)) + "a"
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
