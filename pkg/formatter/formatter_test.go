package formatter

import (
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestRelativeTime(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	now := clock.Now()

	unix := func(d time.Duration) string {
		return strconv.FormatInt(now.Add(-d).Unix(), 10)
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"just now", unix(20 * time.Second), "now"},
		{"future is now", unix(-time.Hour), "now"},
		{"minutes", unix(5 * time.Minute), "5min"},
		{"hours", unix(3*time.Hour + 10*time.Minute), "3h"},
		{"days", unix(3 * 24 * time.Hour), "3d"},
		{"weeks", unix(15 * 24 * time.Hour), "2s"},
		{"months", unix(40 * 24 * time.Hour), "1m"},
		{"years", unix(400 * 24 * time.Hour), "1a"},
		{"milliseconds epoch", strconv.FormatInt(now.Add(-2*time.Hour).UnixMilli(), 10), "2h"},
		{"rfc3339", now.Add(-10 * time.Minute).Format(time.RFC3339), "10min"},
		{"sql datetime", now.Add(-26 * time.Hour).Format("2006-01-02 15:04:05"), "1d"},
		{"already relative", "2h ago", "2h ago"},
		{"garbage", "yesterday-ish", "yesterday-ish"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(tt.raw, now); got != tt.want {
				t.Errorf("RelativeTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTimestampEpochUnits(t *testing.T) {
	sec, ok := ParseTimestamp("1700000000")
	if !ok {
		t.Fatalf("expected seconds epoch to parse")
	}
	ms, ok := ParseTimestamp("1700000000000")
	if !ok {
		t.Fatalf("expected milliseconds epoch to parse")
	}
	if !sec.Equal(ms) {
		t.Fatalf("expected same instant, got %v and %v", sec, ms)
	}
}
