package entities

import "time"

// CapAlert уведомление для RRHH о сотруднике, выбравшем дневной лимит вождения.
type CapAlert struct {
	ID            int64
	EmployeeID    int64
	AlertDate     time.Time
	MinutesDriven int64
	CapMinutes    int64
	Message       string
	CreatedAt     time.Time
}
