//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_assign_post_test
package shift_assign_post

import (
	"context"

	"shiftservice/internal/entities"
	"shiftservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ShiftAssign(ctx context.Context, shiftID, employeeID int64, role entities.EmployeeRoleType) (*entities.ShiftAssignmentResult, error)
}
