package errors

import "errors"

var (
	ErrInvalidDuration = errors.New("service duration must be positive")

	ErrInvalidDate = errors.New("date key must be a valid YYYY-MM-DD calendar date")
)
