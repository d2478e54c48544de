package week_window

import (
	"time"
)

type WeekWindowFactory struct{}

func New() *WeekWindowFactory {
	return &WeekWindowFactory{}
}

// Window возвращает границы недели [понедельник..воскресенье],
// в которую попадает date. Время обнуляется до начала суток UTC.
func (w *WeekWindowFactory) Window(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // воскресенье относится к уходящей неделе
	}

	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)

	return weekStart, weekEnd
}
