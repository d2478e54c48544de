package entities

import "time"

// WeeklySuggestions отчет для оператора за неделю [понедельник..воскресенье].
type WeeklySuggestions struct {
	WeekStart           time.Time
	WeekEnd             time.Time
	UnassignedEmployees []Employee
	UncoveredShifts     []UncoveredShift
}

type UncoveredShift struct {
	Shift         DynamicShift
	AssignedCount int64
	MinCoverage   int64
}
