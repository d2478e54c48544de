package assignment

import "time"

type ShiftAssignmentDB struct {
	ID          int64
	ShiftID     int64
	EmployeeID  int64
	RoleInShift string
	Status      string
	AssignedAt  time.Time
	CompletedAt *time.Time
}

type ShiftAssignmentModifyDB struct {
	ID          *int64
	ShiftID     *int64
	EmployeeID  *int64
	RoleInShift *string
	Status      *string
	AssignedAt  *time.Time
}
