package availability

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	ErrInvalidShiftID    = errors.New("invalid shift id")
	ErrInvalidDate       = errors.New("invalid date")
)
