package display

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration returns a human-readable breakdown of d into years,
// months, days, hours, minutes, seconds, and milliseconds. Only non-zero
// units are included, except that seconds are always shown when no larger
// unit is present. Years and months use the approximate 365/30-day values
// the tool has always reported.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalDays := int(d / (24 * time.Hour))
	years := totalDays / 365
	months := (totalDays % 365) / 30
	days := (totalDays % 365) % 30

	rem := d % (24 * time.Hour)
	hours := int(rem / time.Hour)
	minutes := int(rem % time.Hour / time.Minute)
	seconds := int(rem % time.Minute / time.Second)
	millis := int(rem % time.Second / time.Millisecond)

	var parts []string
	add := func(n int, unit string) {
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
	}

	if years > 0 {
		add(years, "year")
	}
	if months > 0 {
		add(months, "month")
	}
	if days > 0 {
		add(days, "day")
	}
	if hours > 0 {
		add(hours, "hour")
	}
	if minutes > 0 {
		add(minutes, "minute")
	}

	noLargerUnits := years == 0 && months == 0 && days == 0 && hours == 0 && minutes == 0
	if seconds > 0 || noLargerUnits {
		add(seconds, "second")
	}
	if millis > 0 {
		add(millis, "millisecond")
	}

	return strings.Join(parts, ", ")
}

// Timestamp formats t the way all console and ledger output does.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
