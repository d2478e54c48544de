package entities

import "time"

// StaticShift одна из трех фиксированных дневных смен, сидируется миграцией
// и дальше не меняется.
type StaticShift struct {
	ID        int64
	Type      string
	StartTime string
	EndTime   string
	Timezone  string
}

type DynamicShift struct {
	ID              int64
	RouteID         int64
	ScheduledDate   time.Time
	StartTime       string
	DurationMinutes int64
	DrivingCapMin   int64
	Status          ShiftStatusType
	CreatedAt       time.Time
	AssignedAt      *time.Time
	CompletedAt     *time.Time
}

type ShiftStatusType string

const (
	ShiftPending   ShiftStatusType = "pending"
	ShiftAssigned  ShiftStatusType = "assigned"
	ShiftCompleted ShiftStatusType = "completed"
	ShiftCancelled ShiftStatusType = "cancelled"
)

// DefaultDrivingCapMinutes 5 часов непрерывного вождения.
const DefaultDrivingCapMinutes = 300

func (s ShiftStatusType) String() string {
	return string(s)
}

type DynamicShiftModify struct {
	ID              *int64
	RouteID         *int64
	ScheduledDate   *time.Time
	StartTime       *string
	DurationMinutes *int64
	DrivingCapMin   *int64
	Status          *ShiftStatusType
	AssignedAt      *time.Time
	CompletedAt     *time.Time
}
