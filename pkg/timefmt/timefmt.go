// Package timefmt renders timestamps as coarse relative-age labels for
// listing output.
package timefmt

import (
	"fmt"
	"time"
)

// Relative returns "today", "yesterday", "N days ago" for up to a week,
// and a plain date beyond that. Ages are measured in calendar days, not
// 24-hour windows, so anything since local midnight is "today".
func Relative(t, now time.Time) string {
	days := daysBetween(t, now)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}

func daysBetween(t, now time.Time) int {
	tMid := midnight(t.Local())
	nowMid := midnight(now.Local())
	return int(nowMid.Sub(tMid).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
