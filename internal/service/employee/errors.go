package employee

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmployeeID     = errors.New("invalid employee id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidRole           = errors.New("invalid role")
	ErrMissingPairedEmployee = errors.New("escort requires paired employee")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUnknownPairedID  = errors.New("paired employee does not exist")
	ErrConflict         = errors.New("resource already exists")
)
