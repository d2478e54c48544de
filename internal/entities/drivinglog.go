package entities

import "time"

// DrivingLogModify запись журнала вождения, append-only.
type DrivingLogModify struct {
	ID            *int64
	EmployeeID    *int64
	ShiftID       *int64
	LogDate       *time.Time
	MinutesDriven *int64
	MinutesRested *int64
}
