//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=employees_get_test
package employees_get

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
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
}
