package shift

import (
	"shiftservice/internal/entities"
)

func ToDomain(s *DynamicShiftDB) *entities.DynamicShift {
	if s == nil {
		return nil
	}

	return &entities.DynamicShift{
		ID:              s.ID,
		RouteID:         s.RouteID,
		ScheduledDate:   s.ScheduledDate,
		StartTime:       s.StartTime,
		DurationMinutes: s.DurationMinutes,
		DrivingCapMin:   s.DrivingCapMin,
		Status:          entities.ShiftStatusType(s.Status),
		CreatedAt:       s.CreatedAt,
		AssignedAt:      s.AssignedAt,
		CompletedAt:     s.CompletedAt,
	}
}

func FromDomainModify(shiftModify *entities.DynamicShiftModify) *DynamicShiftModifyDB {
	if shiftModify == nil {
		return nil
	}
	shiftDB := &DynamicShiftModifyDB{}

	if shiftModify.ID != nil {
		shiftDB.ID = shiftModify.ID
	}
	if shiftModify.RouteID != nil {
		shiftDB.RouteID = shiftModify.RouteID
	}
	if shiftModify.ScheduledDate != nil {
		shiftDB.ScheduledDate = shiftModify.ScheduledDate
	}
	if shiftModify.StartTime != nil {
		shiftDB.StartTime = shiftModify.StartTime
	}
	if shiftModify.DurationMinutes != nil {
		shiftDB.DurationMinutes = shiftModify.DurationMinutes
	}
	if shiftModify.DrivingCapMin != nil {
		shiftDB.DrivingCapMin = shiftModify.DrivingCapMin
	}
	if shiftModify.Status != nil {
		status := shiftModify.Status.String()
		shiftDB.Status = &status
	}

	return shiftDB
}
