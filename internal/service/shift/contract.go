//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_test
package shift

import (
	"context"

	"shiftservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shiftModifyEntity entities.DynamicShiftModify) (*entities.DynamicShift, error)
	GetByID(ctx context.Context, id int64) (*entities.DynamicShift, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ShiftStatusType) (*entities.DynamicShift, error)
}

type RouteGateway interface {
	GetRouteByID(ctx context.Context, routeID int64) (*entities.Route, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
