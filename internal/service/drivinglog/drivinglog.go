package drivinglog

import (
	"context"
	"fmt"

	"shiftservice/internal/entities"
)

type DrivingLog struct {
	repository Repository
}

func New(repository Repository) *DrivingLog {
	return &DrivingLog{
		repository: repository,
	}
}

// AppendLog дописывает запись в журнал вождения. Журнал append-only,
// обновления и удаления не предусмотрены.
func (d *DrivingLog) AppendLog(ctx context.Context, logModify entities.DrivingLogModify) (int64, error) {
	if logModify.EmployeeID == nil ||
		logModify.ShiftID == nil ||
		logModify.LogDate == nil ||
		logModify.MinutesDriven == nil {
		return 0, ErrMissingRequiredFields
	}

	if *logModify.EmployeeID <= 0 {
		return 0, ErrInvalidEmployeeID
	}
	if *logModify.ShiftID <= 0 {
		return 0, ErrInvalidShiftID
	}
	if logModify.LogDate.IsZero() {
		return 0, ErrInvalidDate
	}
	if *logModify.MinutesDriven < 0 {
		return 0, ErrInvalidMinutes
	}
	if logModify.MinutesRested != nil && *logModify.MinutesRested < 0 {
		return 0, ErrInvalidMinutes
	}

	if logModify.MinutesRested == nil {
		zero := int64(0)
		logModify.MinutesRested = &zero
	}

	id, err := d.repository.Append(ctx, logModify)
	if err != nil {
		return 0, fmt.Errorf("append driving log: %w", err)
	}

	return id, nil
}
