package availability

import (
	"context"
	"fmt"
	"time"

	"shiftservice/internal/entities"
)

type Availability struct {
	repository      Repository
	employeeService EmployeeService
	shiftService    ShiftService
}

func New(repository Repository, employeeService EmployeeService, shiftService ShiftService) *Availability {
	return &Availability{
		repository:      repository,
		employeeService: employeeService,
		shiftService:    shiftService,
	}
}

// CheckEmployee выносит вердикт о допустимости назначения. Чистое чтение,
// детерминировано, без транзакции: гонка с параллельным assign закрывается
// уникальным ограничением в координаторе, не тут.
func (a *Availability) CheckEmployee(ctx context.Context, employeeID, shiftID int64) (*entities.AvailabilityVerdict, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	if shiftID <= 0 {
		return nil, ErrInvalidShiftID
	}

	employee, err := a.employeeService.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}

	shift, err := a.shiftService.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}

	minutesDriven, err := a.repository.SumDrivingMinutes(ctx, employeeID, shift.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("sum driving minutes: %w", err)
	}

	verdict := entities.AvailabilityVerdict{
		EmployeeID:         employeeID,
		ShiftID:            shiftID,
		Eligible:           true,
		MinutesDrivenToday: minutesDriven,
	}

	if !employee.Active {
		verdict.Eligible = false
		verdict.Reason = entities.ReasonInactive
		return &verdict, nil
	}

	hasActive, err := a.repository.HasActiveAssignment(ctx, shiftID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("check active assignment: %w", err)
	}
	if hasActive {
		verdict.Eligible = false
		verdict.Reason = entities.ReasonAlreadyAssigned
		return &verdict, nil
	}

	// Достижение лимита тоже делает недоступным, >= а не >
	if minutesDriven >= shift.DrivingCapMin {
		verdict.Eligible = false
		verdict.Reason = entities.ReasonCapReached
		return &verdict, nil
	}

	return &verdict, nil
}

// PublishCapAlerts записывает алерты по всем сотрудникам, выбравшим дневной
// лимит на сегодня. Вызывается фоновой задачей, идемпотентно.
func (a *Availability) PublishCapAlerts(ctx context.Context) (int64, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	inserted, err := a.repository.InsertCapAlertsForDate(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("publish cap alerts: %w", err)
	}

	return inserted, nil
}

// CapAlertsForDate читающая сторона для RRHH: алерты за конкретный день.
func (a *Availability) CapAlertsForDate(ctx context.Context, date time.Time) ([]entities.CapAlert, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	alerts, err := a.repository.ListCapAlertsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list cap alerts: %w", err)
	}

	return alerts, nil
}
