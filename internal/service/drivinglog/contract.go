//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivinglog_test
package drivinglog

import (
	"context"

	"shiftservice/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, logModifyEntity entities.DrivingLogModify) (int64, error)
}
