package events

import (
	"testing"
	"time"
)

func TestRelativeAge_Ladder(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 0, "0 seconds ago"},
		{"seconds", 30 * time.Second, "30 seconds ago"},
		{"one minute", 60 * time.Second, "1 minutes ago"},
		{"minutes", 59 * time.Minute, "59 minutes ago"},
		{"one hour", time.Hour, "1 hours ago"},
		{"hours", 23 * time.Hour, "23 hours ago"},
		{"two days", 48 * time.Hour, "2 days ago"},
		{"seven days still days", 7 * 24 * time.Hour, "7 days ago"},
		{"eight days becomes weeks", 8 * 24 * time.Hour, "1 weeks ago"},
		{"two weeks", 15 * 24 * time.Hour, "2 weeks ago"},
		{"twenty nine days", 29 * 24 * time.Hour, "4 weeks ago"},
		{"thirty days loses the number", 30 * 24 * time.Hour, "weeks ago"},
		{"months out", 90 * 24 * time.Hour, "weeks ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := relativeAge(now, now.Add(-tc.ago))
			if got != tc.want {
				t.Fatalf("relativeAge(-%v) = %q, want %q", tc.ago, got, tc.want)
			}
		})
	}
}

func TestRelativeAge_OneDayUsesHours(t *testing.T) {
	// days == 1 no matchea la rama de días: se reporta el resto en horas.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	got := relativeAge(now, now.Add(-30*time.Hour))
	if got != "6 hours ago" {
		t.Fatalf("expected remainder in hours for a 30h delta, got %q", got)
	}
}

func TestRelativeAge_FutureTimestampClampsToZero(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	got := relativeAge(now, now.Add(5*time.Minute))
	if got != "0 seconds ago" {
		t.Fatalf("expected clamp to zero for future ts, got %q", got)
	}
}
