package entities

// AvailabilityVerdict вердикт о допустимости назначения сотрудника на смену.
// Превышение лимита вождения это не ошибка, а eligible=false с причиной.
type AvailabilityVerdict struct {
	EmployeeID         int64
	ShiftID            int64
	Eligible           bool
	MinutesDrivenToday int64
	Reason             string
}

const (
	ReasonCapReached      = "continuous driving cap reached for this date"
	ReasonAlreadyAssigned = "employee already holds an active assignment for this shift"
	ReasonInactive        = "employee is deactivated"
)
