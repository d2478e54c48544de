//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_event_test
package shift_event

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
	ProcessShiftEvent(ctx context.Context, event entities.ShiftEvent) error
}
