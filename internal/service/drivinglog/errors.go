package drivinglog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmployeeID     = errors.New("invalid employee id")
	ErrInvalidShiftID        = errors.New("invalid shift id")
	ErrInvalidDate           = errors.New("invalid log date")
	ErrInvalidMinutes        = errors.New("invalid minutes value")

	ErrUnknownReference = errors.New("employee or shift does not exist")
)
