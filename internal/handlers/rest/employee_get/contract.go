//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=employee_get_test
package employee_get

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
	GetEmployee(ctx context.Context, id int64) (*entities.Employee, error)
}
