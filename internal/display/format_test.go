package display

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0 seconds"},
		{"sub-second", 200 * time.Millisecond, "0 seconds, 200 milliseconds"},
		{"one second", time.Second, "1 second"},
		{"second and millis", 1500 * time.Millisecond, "1 second, 500 milliseconds"},
		{"minute and seconds", 90 * time.Second, "1 minute, 30 seconds"},
		{"whole hours", 2 * time.Hour, "2 hours"},
		{"mixed", time.Hour + time.Minute + time.Second + 200*time.Millisecond,
			"1 hour, 1 minute, 1 second, 200 milliseconds"},
		{"days", 26 * time.Hour, "1 day, 2 hours"},
		{"negative clamps", -time.Second, "0 seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 28, 9, 5, 3, 0, time.UTC)
	if got := Timestamp(ts); got != "2026-08-28 09:05:03" {
		t.Errorf("Timestamp = %q", got)
	}
}
