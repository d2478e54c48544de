//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=employee_post_test
package employee_post

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
	CreateEmployee(ctx context.Context, employeeModifyEntity entities.EmployeeModify) (int64, error)
}
