package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"shiftservice/internal/entities"
	"shiftservice/internal/repository"
	"shiftservice/internal/service/shift"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shiftModifyEntity entities.DynamicShiftModify) (*entities.DynamicShift, error) {
	shiftModifyModel := FromDomainModify(&shiftModifyEntity)

	query := `
		INSERT INTO dynamic_shifts (route_id, scheduled_date, start_time, duration_minutes, driving_cap_minutes, status)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 'pending'))
		RETURNING id, route_id, scheduled_date, start_time, duration_minutes, driving_cap_minutes,
			status, created_at, assigned_at, completed_at
	`

	var shiftModel DynamicShiftDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shiftModifyModel.RouteID,
		shiftModifyModel.ScheduledDate,
		shiftModifyModel.StartTime,
		shiftModifyModel.DurationMinutes,
		shiftModifyModel.DrivingCapMin,
		shiftModifyModel.Status,
	).Scan(
		&shiftModel.ID,
		&shiftModel.RouteID,
		&shiftModel.ScheduledDate,
		&shiftModel.StartTime,
		&shiftModel.DurationMinutes,
		&shiftModel.DrivingCapMin,
		&shiftModel.Status,
		&shiftModel.CreatedAt,
		&shiftModel.AssignedAt,
		&shiftModel.CompletedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shift.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected shift repository create error: %w", err)
	}

	return ToDomain(&shiftModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DynamicShift, error) {
	query := `
		SELECT id, route_id, scheduled_date, start_time, duration_minutes, driving_cap_minutes,
			status, created_at, assigned_at, completed_at
		FROM dynamic_shifts
		WHERE id = $1
	`

	var shiftModel DynamicShiftDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shiftModel.ID,
			&shiftModel.RouteID,
			&shiftModel.ScheduledDate,
			&shiftModel.StartTime,
			&shiftModel.DurationMinutes,
			&shiftModel.DrivingCapMin,
			&shiftModel.Status,
			&shiftModel.CreatedAt,
			&shiftModel.AssignedAt,
			&shiftModel.CompletedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}

		return nil, fmt.Errorf("unexpected shift repository getbyid error: %w", err)
	}

	return ToDomain(&shiftModel), nil
}

// UpdateStatus переводит смену в новый статус и синхронно проставляет либо
// сбрасывает assigned_at/completed_at в зависимости от целевого статуса.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.ShiftStatusType) (*entities.DynamicShift, error) {
	query := `
		UPDATE dynamic_shifts
		SET status = $2,
			assigned_at = CASE
				WHEN $2 = 'assigned' THEN NOW()
				WHEN $2 = 'pending' THEN NULL
				ELSE assigned_at
			END,
			completed_at = CASE
				WHEN $2 = 'completed' THEN NOW()
				ELSE completed_at
			END
		WHERE id = $1
		RETURNING id, route_id, scheduled_date, start_time, duration_minutes, driving_cap_minutes,
			status, created_at, assigned_at, completed_at
	`

	var shiftModel DynamicShiftDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&shiftModel.ID,
			&shiftModel.RouteID,
			&shiftModel.ScheduledDate,
			&shiftModel.StartTime,
			&shiftModel.DurationMinutes,
			&shiftModel.DrivingCapMin,
			&shiftModel.Status,
			&shiftModel.CreatedAt,
			&shiftModel.AssignedAt,
			&shiftModel.CompletedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}

		return nil, fmt.Errorf("unexpected shift repository updatestatus error: %w", err)
	}

	return ToDomain(&shiftModel), nil
}
