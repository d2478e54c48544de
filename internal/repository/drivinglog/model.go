package drivinglog

import "time"

type DrivingLogModifyDB struct {
	ID            *int64
	EmployeeID    *int64
	ShiftID       *int64
	LogDate       *time.Time
	MinutesDriven *int64
	MinutesRested *int64
}
