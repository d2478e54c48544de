package drivinglog

import (
	"context"
	"fmt"

	"shiftservice/internal/entities"
	"shiftservice/internal/repository"
	"shiftservice/internal/service/drivinglog"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append журнал append-only, никаких update/delete у записей нет.
func (r *Repository) Append(ctx context.Context, logModifyEntity entities.DrivingLogModify) (int64, error) {
	logModifyModel := FromDomainModify(&logModifyEntity)

	query := `
		INSERT INTO driving_logs (employee_id, dynamic_shift_id, log_date, minutes_driven, minutes_rested)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		logModifyModel.EmployeeID,
		logModifyModel.ShiftID,
		logModifyModel.LogDate,
		logModifyModel.MinutesDriven,
		logModifyModel.MinutesRested,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, drivinglog.ErrUnknownReference
		}
		return 0, fmt.Errorf("unexpected driving log repository append error: %w", err)
	}

	return id, nil
}
