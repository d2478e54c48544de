package suggestion

import (
	"shiftservice/internal/entities"
)

func ToEmployeeDomain(e *UnassignedEmployeeDB) *entities.Employee {
	if e == nil {
		return nil
	}

	return &entities.Employee{
		ID:               e.ID,
		Name:             e.Name,
		Role:             entities.EmployeeRoleType(e.Role),
		Active:           e.Active,
		PairedEmployeeID: e.PairedEmployeeID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToUncoveredShiftDomain(s *UncoveredShiftDB, minCoverage int64) *entities.UncoveredShift {
	if s == nil {
		return nil
	}

	return &entities.UncoveredShift{
		Shift: entities.DynamicShift{
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
		},
		AssignedCount: s.AssignedCount,
		MinCoverage:   minCoverage,
	}
}
