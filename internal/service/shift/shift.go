package shift

import (
	"context"
	"fmt"

	"shiftservice/internal/entities"
)

type Shift struct {
	repository   Repository
	routeGateway RouteGateway
	txManager    TxManager
}

func New(repository Repository, routeGateway RouteGateway, txManager TxManager) *Shift {
	return &Shift{
		repository:   repository,
		routeGateway: routeGateway,
		txManager:    txManager,
	}
}

func (s *Shift) CreateShift(ctx context.Context, shiftModify entities.DynamicShiftModify) (*entities.DynamicShift, error) {
	if shiftModify.RouteID == nil ||
		shiftModify.ScheduledDate == nil ||
		shiftModify.StartTime == nil ||
		shiftModify.DurationMinutes == nil {
		return nil, ErrMissingRequiredFields
	}

	if *shiftModify.RouteID <= 0 {
		return nil, ErrInvalidRouteID
	}
	if shiftModify.ScheduledDate.IsZero() {
		return nil, ErrInvalidDate
	}
	if !isValidStartTime(*shiftModify.StartTime) {
		return nil, ErrInvalidStartTime
	}
	if *shiftModify.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if shiftModify.DrivingCapMin != nil && *shiftModify.DrivingCapMin <= 0 {
		return nil, ErrInvalidDrivingCap
	}

	// Маршрут проверяем в каталоге ms-logistica до записи
	route, err := s.routeGateway.GetRouteByID(ctx, *shiftModify.RouteID)
	if err != nil {
		return nil, fmt.Errorf("verify route: %w", err)
	}
	if !route.Active {
		return nil, fmt.Errorf("%w: %d", ErrRouteNotFound, route.ID)
	}

	if shiftModify.DrivingCapMin == nil {
		defaultCap := int64(entities.DefaultDrivingCapMinutes)
		shiftModify.DrivingCapMin = &defaultCap
	}

	// Новая смена всегда стартует в pending, что бы ни пришло в modify
	pending := entities.ShiftPending
	shiftModify.Status = &pending

	shift, err := s.repository.Create(ctx, shiftModify)
	if err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}

	return shift, nil
}

func (s *Shift) GetShift(ctx context.Context, id int64) (*entities.DynamicShift, error) {
	shift, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

// UpdateShiftStatus переводит смену в новый статус. Контроль допустимости
// перехода лежит на координаторе назначений, тут только валидность значения.
func (s *Shift) UpdateShiftStatus(ctx context.Context, id int64, status entities.ShiftStatusType) (*entities.DynamicShift, error) {
	if !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	shift, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update shift status: %w", err)
	}
	return shift, nil
}
