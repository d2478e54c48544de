package suggestion

import (
	"context"
	"fmt"
	"time"

	"shiftservice/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetEmployeesWithoutAssignments активные сотрудники без единого активного
// назначения на смены внутри недельного окна.
func (r *Repository) GetEmployeesWithoutAssignments(ctx context.Context, weekStart, weekEnd time.Time) ([]entities.Employee, error) {
	query := `
		SELECT e.id, e.name, e.role, e.active, e.paired_employee_id, e.created_at, e.updated_at
		FROM employees e
		WHERE e.active = TRUE
		AND NOT EXISTS (
			SELECT 1
			FROM shift_assignments a
			JOIN dynamic_shifts s ON s.id = a.dynamic_shift_id
			WHERE a.employee_id = e.id
			  AND a.status = 'assigned'
			  AND s.scheduled_date BETWEEN $1 AND $2
		)
		ORDER BY e.id
	`

	rows, err := r.querier.Query(ctx, query, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("unexpected suggestion repository unassigned employees error: %w", err)
	}
	defer rows.Close()

	employeeModels := make([]UnassignedEmployeeDB, 0, 8)
	for rows.Next() {
		var employeeModel UnassignedEmployeeDB
		err := rows.Scan(
			&employeeModel.ID,
			&employeeModel.Name,
			&employeeModel.Role,
			&employeeModel.Active,
			&employeeModel.PairedEmployeeID,
			&employeeModel.CreatedAt,
			&employeeModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected suggestion repository unassigned employees error: %w", err)
		}
		employeeModels = append(employeeModels, employeeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected suggestion repository unassigned employees error: %w", err)
	}

	result := make([]entities.Employee, len(employeeModels))
	for i, employeeModel := range employeeModels {
		result[i] = *ToEmployeeDomain(&employeeModel)
	}
	return result, nil
}

// GetUncoveredShifts незавершенные смены окна, у которых активных назначений
// меньше minCoverage.
func (r *Repository) GetUncoveredShifts(ctx context.Context, weekStart, weekEnd time.Time, minCoverage int64) ([]entities.UncoveredShift, error) {
	query := `
		SELECT
			s.id, s.route_id, s.scheduled_date, s.start_time, s.duration_minutes,
			s.driving_cap_minutes, s.status, s.created_at, s.assigned_at, s.completed_at,
			COUNT(a.id) FILTER (WHERE a.status = 'assigned')
		FROM dynamic_shifts s
		LEFT JOIN shift_assignments a ON a.dynamic_shift_id = s.id
		WHERE s.scheduled_date BETWEEN $1 AND $2
		  AND s.status IN ('pending', 'assigned')
		GROUP BY s.id
		HAVING COUNT(a.id) FILTER (WHERE a.status = 'assigned') < $3
		ORDER BY s.scheduled_date, s.id
	`

	rows, err := r.querier.Query(ctx, query, weekStart, weekEnd, minCoverage)
	if err != nil {
		return nil, fmt.Errorf("unexpected suggestion repository uncovered shifts error: %w", err)
	}
	defer rows.Close()

	shiftModels := make([]UncoveredShiftDB, 0, 8)
	for rows.Next() {
		var shiftModel UncoveredShiftDB
		err := rows.Scan(
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
			&shiftModel.AssignedCount,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected suggestion repository uncovered shifts error: %w", err)
		}
		shiftModels = append(shiftModels, shiftModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected suggestion repository uncovered shifts error: %w", err)
	}

	result := make([]entities.UncoveredShift, len(shiftModels))
	for i, shiftModel := range shiftModels {
		result[i] = *ToUncoveredShiftDomain(&shiftModel, minCoverage)
	}
	return result, nil
}
