package suggestion

import "time"

type UnassignedEmployeeDB struct {
	ID               int64
	Name             string
	Role             string
	Active           bool
	PairedEmployeeID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type UncoveredShiftDB struct {
	ID              int64
	RouteID         int64
	ScheduledDate   time.Time
	StartTime       string
	DurationMinutes int64
	DrivingCapMin   int64
	Status          string
	CreatedAt       time.Time
	AssignedAt      *time.Time
	CompletedAt     *time.Time
	AssignedCount   int64
}
