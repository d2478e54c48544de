//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=employee_put_test
package employee_put

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
	UpdateEmployee(ctx context.Context, employeeModifyEntity entities.EmployeeModify) (*entities.Employee, error)
}
