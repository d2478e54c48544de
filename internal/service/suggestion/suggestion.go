package suggestion

import (
	"context"
	"fmt"
	"time"

	"shiftservice/internal/entities"
)

type Suggestion struct {
	repository  Repository
	weekFactory WeekWindowFactory
	minCoverage int64
}

func New(repository Repository, weekFactory WeekWindowFactory, minCoverage int64) *Suggestion {
	return &Suggestion{
		repository:  repository,
		weekFactory: weekFactory,
		minCoverage: minCoverage,
	}
}

// WeeklyReport собирает отчет за неделю, в которую попадает date:
// сотрудники без назначений и смены с покрытием ниже минимального.
// Отчет производный, ничего не мутирует.
func (s *Suggestion) WeeklyReport(ctx context.Context, date time.Time) (*entities.WeeklySuggestions, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	weekStart, weekEnd := s.weekFactory.Window(date)

	unassigned, err := s.repository.GetEmployeesWithoutAssignments(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("get unassigned employees: %w", err)
	}

	uncovered, err := s.repository.GetUncoveredShifts(ctx, weekStart, weekEnd, s.minCoverage)
	if err != nil {
		return nil, fmt.Errorf("get uncovered shifts: %w", err)
	}

	return &entities.WeeklySuggestions{
		WeekStart:           weekStart,
		WeekEnd:             weekEnd,
		UnassignedEmployees: unassigned,
		UncoveredShifts:     uncovered,
	}, nil
}
