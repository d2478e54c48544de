//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"shiftservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, assignmentModifyEntity entities.ShiftAssignmentModify) (*entities.ShiftAssignment, error)
	DeleteActiveByShiftID(ctx context.Context, shiftID int64) (int64, error)
	CompleteActiveByShiftID(ctx context.Context, shiftID int64) (int64, error)
}

type AvailabilityService interface {
	CheckEmployee(ctx context.Context, employeeID, shiftID int64) (*entities.AvailabilityVerdict, error)
}

type ShiftService interface {
	GetShift(ctx context.Context, id int64) (*entities.DynamicShift, error)
	UpdateShiftStatus(ctx context.Context, id int64, status entities.ShiftStatusType) (*entities.DynamicShift, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
