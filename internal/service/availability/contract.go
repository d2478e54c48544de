//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"
	"time"

	"shiftservice/internal/entities"
)

type Repository interface {
	SumDrivingMinutes(ctx context.Context, employeeID int64, date time.Time) (int64, error)
	HasActiveAssignment(ctx context.Context, shiftID, employeeID int64) (bool, error)
	InsertCapAlertsForDate(ctx context.Context, date time.Time) (int64, error)
	ListCapAlertsByDate(ctx context.Context, date time.Time) ([]entities.CapAlert, error)
}

type EmployeeService interface {
	GetEmployee(ctx context.Context, id int64) (*entities.Employee, error)
}

type ShiftService interface {
	GetShift(ctx context.Context, id int64) (*entities.DynamicShift, error)
}
