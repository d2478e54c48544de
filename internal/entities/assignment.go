package entities

import "time"

type ShiftAssignment struct {
	ID          int64
	ShiftID     int64
	EmployeeID  int64
	RoleInShift EmployeeRoleType
	Status      AssignmentStatusType
	AssignedAt  time.Time
	CompletedAt *time.Time
}

type AssignmentStatusType string

const (
	AssignmentActive    AssignmentStatusType = "assigned"
	AssignmentCompleted AssignmentStatusType = "completed"
	AssignmentCancelled AssignmentStatusType = "cancelled"
)

func (s AssignmentStatusType) String() string {
	return string(s)
}

type ShiftAssignmentModify struct {
	ID          *int64
	ShiftID     *int64
	EmployeeID  *int64
	RoleInShift *EmployeeRoleType
	Status      *AssignmentStatusType
	AssignedAt  *time.Time
}

// ShiftAssignmentResult результат операции assign: запись назначения плюс
// актуальный статус родительской смены.
type ShiftAssignmentResult struct {
	AssignmentID int64
	ShiftID      int64
	EmployeeID   int64
	RoleInShift  EmployeeRoleType
	AssignedAt   time.Time
	ShiftStatus  ShiftStatusType
}

type ShiftUnassignmentResult struct {
	ShiftID     int64
	Removed     int64
	ShiftStatus ShiftStatusType
}
