package availability

import "time"

type CapAlertDB struct {
	ID            int64
	EmployeeID    int64
	AlertDate     time.Time
	MinutesDriven int64
	CapMinutes    int64
	Message       string
	CreatedAt     time.Time
}
