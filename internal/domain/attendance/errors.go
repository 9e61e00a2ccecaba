package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrFutureDate is returned when a write targets a date after today.
	// Attendance is a record of the past and present only.
	ErrFutureDate = errors.New("attendance cannot be logged for a future date")

	// ErrBeforeJoinDate is returned when a write targets a date before the
	// worker's join date.
	ErrBeforeJoinDate = errors.New("attendance cannot be logged before the worker's join date")
)
