//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shiftevent_test
package shiftevent

import (
	"context"

	"shiftservice/internal/entities"
)

type AssignmentService interface {
	ShiftUnassign(ctx context.Context, shiftID int64) (*entities.ShiftUnassignmentResult, error)
	CompleteShift(ctx context.Context, shiftID int64) error
}

type DrivingLogService interface {
	AppendLog(ctx context.Context, logModify entities.DrivingLogModify) (int64, error)
}

type (
	ExecuteFn      func(ctx context.Context, event entities.ShiftEvent) error
	HandlerFactory interface {
		GetHandler(event entities.ShiftEventType) (ExecuteFn, error)
	}
)
