package availability

import "errors"

var (
	// ErrServiceNotFound means the service does not exist or belongs to
	// another barbershop.
	ErrServiceNotFound = errors.New("service not found for this barbershop")
	// ErrSlotUnavailable means the requested time is not in the freshly
	// computed slot list, or lost a race to another booking.
	ErrSlotUnavailable = errors.New("slot no longer available")
	// ErrInvalidDate means the caller supplied a malformed date string.
	ErrInvalidDate = errors.New("invalid date (YYYY-MM-DD)")
	// ErrInvalidTime means the caller supplied a malformed time string.
	ErrInvalidTime = errors.New("invalid time (HH:MM)")
)
