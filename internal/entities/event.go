package entities

import "time"

type ShiftEventType string

const (
	EventSegmentCompleted ShiftEventType = "segment_completed"
	EventShiftCompleted   ShiftEventType = "shift_completed"
	EventShiftCancelled   ShiftEventType = "shift_cancelled"
)

func (e ShiftEventType) String() string {
	return string(e)
}

// ShiftEvent событие жизненного цикла смены из топика Kafka.
type ShiftEvent struct {
	Event         ShiftEventType
	ShiftID       int64
	EmployeeID    int64
	Date          time.Time
	MinutesDriven int64
	MinutesRested int64
}
