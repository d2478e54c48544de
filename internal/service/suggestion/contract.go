//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=suggestion_test
package suggestion

import (
	"context"
	"time"

	"shiftservice/internal/entities"
)

type Repository interface {
	GetEmployeesWithoutAssignments(ctx context.Context, weekStart, weekEnd time.Time) ([]entities.Employee, error)
	GetUncoveredShifts(ctx context.Context, weekStart, weekEnd time.Time, minCoverage int64) ([]entities.UncoveredShift, error)
}

type WeekWindowFactory interface {
	Window(date time.Time) (time.Time, time.Time)
}
