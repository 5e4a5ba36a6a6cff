package bonus

import "errors"

var (
	ErrEmptyID          = errors.New("bonus id cannot be empty")
	ErrMissingReference = errors.New("bonus must reference a program and a partner")
	ErrInvalidStatus    = errors.New("status must be live, upcoming or expired")
	ErrNegativePercent  = errors.New("bonus percent cannot be negative")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrEndBeforeStart   = errors.New("end date cannot be before start date")
)
