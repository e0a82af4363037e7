// Package derive holds the pure derived-field computations that the write
// paths apply before persisting attendance, leave and salary records.
package derive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"employee-management-system/models"
)

const (
	// Work day starts at 09:00; check-ins up to 30 minutes past are
	// still counted as Present.
	standardStartMinutes = 9 * 60
	lateGraceMinutes     = 30

	standardWorkHours = 8.0

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseClock converts an "HH:MM" 24-hour clock string to minutes since
// midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return hours*60 + minutes, nil
}

// WorkingHours returns the fractional hours between check-in and check-out,
// both interpreted as same-day clock times. A check-out earlier than the
// check-in yields zero rather than a negative span.
func WorkingHours(checkIn, checkOut string) (float64, error) {
	in, err := ParseClock(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return 0, err
	}
	hours := float64(out-in) / 60.0
	if hours < 0 {
		hours = 0
	}
	return hours, nil
}

// Overtime is the portion of a working day beyond the 8-hour standard.
func Overtime(workingHours float64) float64 {
	overtime := workingHours - standardWorkHours
	if overtime < 0 {
		return 0
	}
	return overtime
}

// CheckInStatus classifies a check-in time. 09:00 exactly is on-time, and
// up to 30 minutes past still counts as Present; beyond that it is Late.
// The status is fixed at creation and never recomputed.
func CheckInStatus(checkIn string) (string, error) {
	in, err := ParseClock(checkIn)
	if err != nil {
		return "", err
	}
	if in <= standardStartMinutes+lateGraceMinutes {
		return models.AttendancePresent, nil
	}
	return models.AttendanceLate, nil
}

// LeaveTotalDays counts calendar days inclusive of both endpoints.
func LeaveTotalDays(fromDate, toDate time.Time) (int, error) {
	if fromDate.After(toDate) {
		return 0, fmt.Errorf("from date cannot be later than to date")
	}
	from := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(toDate.Year(), toDate.Month(), toDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1, nil
}

// NetSalary is basic + allowances + bonus - deductions.
func NetSalary(basic, allowances, deductions, bonus float64) float64 {
	return basic + allowances + bonus - deductions
}
