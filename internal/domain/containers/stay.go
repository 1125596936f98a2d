package containers

import (
	"fmt"
	"math"
	"time"
)

// FreeDays — бесплатные дни хранения до начисления демереджа.
const FreeDays = 7

// StayDuration — длительность стоянки, отрицательная обрезается до нуля.
func StayDuration(entry, exit time.Time) time.Duration {
	d := exit.Sub(entry)
	if d < 0 {
		return 0
	}
	return d
}

// FormatStay печатает длительность как "Xd Yh Zm".
func FormatStay(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int64(d / time.Minute)
	days := mins / (24 * 60)
	hours := (mins % (24 * 60)) / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins%60)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysInYard считает календарные дни: день входа считается первым.
func DaysInYard(entry, today time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	diff := midnight(today, loc).Sub(midnight(entry, loc))
	days := math.Ceil(math.Abs(diff.Hours()) / 24)
	return int(days) + 1
}

func Overdue(days int) bool { return days > FreeDays }
