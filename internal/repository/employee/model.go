package employee

import "time"

type EmployeeDB struct {
	ID               int64
	Name             string
	Role             string
	Active           bool
	PairedEmployeeID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmployeeModifyDB struct {
	ID               *int64
	Name             *string
	Role             *string
	Active           *bool
	PairedEmployeeID *int64
}
