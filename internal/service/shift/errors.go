package shift

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShiftID        = errors.New("invalid shift id")
	ErrInvalidRouteID        = errors.New("invalid route id")
	ErrInvalidDate           = errors.New("invalid scheduled date")
	ErrInvalidStartTime      = errors.New("invalid start time")
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrInvalidDrivingCap     = errors.New("invalid continuous driving cap")
	ErrInvalidStatus         = errors.New("invalid shift status")

	ErrShiftNotFound    = errors.New("shift not found")
	ErrRouteNotFound    = errors.New("route not found")
	ErrRouteUnavailable = errors.New("route catalog unavailable")
)
