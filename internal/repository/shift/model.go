package shift

import "time"

type DynamicShiftDB struct {
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
}

type DynamicShiftModifyDB struct {
	ID              *int64
	RouteID         *int64
	ScheduledDate   *time.Time
	StartTime       *string
	DurationMinutes *int64
	DrivingCapMin   *int64
	Status          *string
}
