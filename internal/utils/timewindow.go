package utils

import (
	"time"

	"meetingdesk-backend/internal/domain"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a zero-padded HH:MM clock time. Zero
// padding matters: both the overlap rule below and the SQL conflict checks
// compare these values lexically.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// Overlaps applies the half-open interval rule to two same-day windows:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1. Back-to-back windows
// sharing a boundary do not overlap. Inputs must be zero-padded HH:MM so
// that lexical order equals chronological order.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && s2 < e1
}

// ValidateWindow checks the reservation window of a new booking request:
// well-formed date and times, start strictly before end, and a date not in
// the past relative to today.
func ValidateWindow(date, startTime, endTime string, now time.Time) error {
	if !ValidDate(date) {
		return domain.NewValidationError("date", "must be a YYYY-MM-DD date")
	}
	if !ValidClock(startTime) {
		return domain.NewValidationError("start_time", "must be a HH:MM time")
	}
	if !ValidClock(endTime) {
		return domain.NewValidationError("end_time", "must be a HH:MM time")
	}
	if startTime >= endTime {
		return domain.NewValidationError("start_time", "must be before end_time")
	}
	if date < now.Format(DateLayout) {
		return domain.NewValidationError("date", "must not be in the past")
	}
	return nil
}
