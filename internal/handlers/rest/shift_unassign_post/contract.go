//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_unassign_post_test
package shift_unassign_post

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
	ShiftUnassign(ctx context.Context, shiftID int64) (*entities.ShiftUnassignmentResult, error)
}
