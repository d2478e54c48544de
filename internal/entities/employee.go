package entities

import (
	"time"
)

type Employee struct {
	ID               int64
	Name             string
	Role             EmployeeRoleType
	Active           bool
	PairedEmployeeID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmployeeRoleType string

const (
	RoleDriver    EmployeeRoleType = "driver"
	RoleAssistant EmployeeRoleType = "assistant"
	RoleEscort    EmployeeRoleType = "escort"
)

const DefaultEmployeeRole = RoleDriver

func (r EmployeeRoleType) String() string {
	return string(r)
}

type EmployeeModify struct {
	ID               *int64
	Name             *string
	Role             *EmployeeRoleType
	Active           *bool
	PairedEmployeeID *int64
}
