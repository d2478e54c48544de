//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=suggestions_get_test
package suggestions_get

import (
	"context"
	"time"

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
	WeeklyReport(ctx context.Context, date time.Time) (*entities.WeeklySuggestions, error)
}
