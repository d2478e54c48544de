package assignment

import "errors"

var (
	ErrInvalidShiftID     = errors.New("invalid shift id")
	ErrInvalidEmployeeID  = errors.New("invalid employee id")
	ErrInvalidRoleInShift = errors.New("invalid role in shift")

	ErrEmployeeNotEligible  = errors.New("employee not eligible for assignment")
	ErrShiftNotAssignable   = errors.New("shift is not assignable in its current status")
	ErrDuplicateAssignment  = errors.New("employee already assigned to this shift in this role")
	ErrAssignmentNotFound   = errors.New("no active assignment for shift")
	ErrUnknownShiftEmployee = errors.New("shift or employee does not exist")
)
