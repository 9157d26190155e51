package errors

import "errors"

var (
	// ErrNotFound is returned when no booking matches the reference code.
	ErrNotFound = errors.New("booking not found")

	// ErrReferenceExists is returned when an insert collides with an existing
	// reference code. The committer regenerates and retries.
	ErrReferenceExists = errors.New("reference code already exists")

	// ErrDailyLimitReached is returned when the date has no remaining daily
	// capacity at commit time.
	ErrDailyLimitReached = errors.New("daily booking limit reached")

	// ErrSlotFull is returned when the requested slot is at its concurrency
	// cap at commit time.
	ErrSlotFull = errors.New("time slot is fully booked")

	// ErrSlotUnknown is returned when the requested label is not one the
	// generator produces for the booking's duration.
	ErrSlotUnknown = errors.New("time slot is not offered on this date")
)
