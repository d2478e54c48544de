//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driving_log_post_test
package driving_log_post

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
	AppendLog(ctx context.Context, logModifyEntity entities.DrivingLogModify) (int64, error)
}
