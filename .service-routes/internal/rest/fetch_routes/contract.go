package fetch_routes

import (
	"context"

	"github.com/luxchile/service-routes/internal/domain/entity"
)

type usecase interface {
	List(ctx context.Context) ([]*entity.Route, error)
	GetByID(ctx context.Context, id int64) (*entity.Route, error)
}
