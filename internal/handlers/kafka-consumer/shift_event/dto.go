package shift_event

// shiftEvent входящее сообщение топика shift.events.
// Поля minutes_* заполняются только для segment_completed.
type shiftEvent struct {
	Event         string `json:"event"`
	ShiftID       int64  `json:"shift_ID"`
	EmployeeID    int64  `json:"employee_ID"`
	Date          string `json:"date"`
	MinutesDriven int64  `json:"minutes_driven"`
	MinutesRested int64  `json:"minutes_rested"`
}
