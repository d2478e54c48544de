package availability

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

func (r *Repository) SumDrivingMinutes(ctx context.Context, employeeID int64, date time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(minutes_driven), 0)
		FROM driving_logs
		WHERE employee_id = $1 AND log_date = $2
	`

	var minutes int64
	err := r.querier.QueryRow(ctx, query, employeeID, date).Scan(&minutes)
	if err != nil {
		return 0, fmt.Errorf("unexpected availability repository sum minutes error: %w", err)
	}

	return minutes, nil
}

func (r *Repository) HasActiveAssignment(ctx context.Context, shiftID, employeeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM shift_assignments
			WHERE dynamic_shift_id = $1 AND employee_id = $2 AND status = 'assigned'
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, shiftID, employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected availability repository has assignment error: %w", err)
	}

	return exists, nil
}

// InsertCapAlertsForDate идемпотентно: повторный запуск за тот же день ничего
// не добавляет благодаря UNIQUE(employee_id, alert_date).
func (r *Repository) InsertCapAlertsForDate(ctx context.Context, date time.Time) (int64, error) {
	query := `
		INSERT INTO cap_alerts (employee_id, alert_date, minutes_driven, cap_minutes, message)
		SELECT
			l.employee_id,
			l.log_date,
			SUM(l.minutes_driven),
			$2,
			'continuous driving cap reached'
		FROM driving_logs l
		WHERE l.log_date = $1
		GROUP BY l.employee_id, l.log_date
		HAVING SUM(l.minutes_driven) >= $2
		ON CONFLICT (employee_id, alert_date) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, date, int64(entities.DefaultDrivingCapMinutes))
	if err != nil {
		return 0, fmt.Errorf("unexpected availability repository insert cap alerts error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ListCapAlertsByDate(ctx context.Context, date time.Time) ([]entities.CapAlert, error) {
	query := `
		SELECT id, employee_id, alert_date, minutes_driven, cap_minutes, message, created_at
		FROM cap_alerts
		WHERE alert_date = $1
		ORDER BY employee_id
	`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected availability repository list cap alerts error: %w", err)
	}
	defer rows.Close()

	alertModels := make([]CapAlertDB, 0, 8)
	for rows.Next() {
		var alertModel CapAlertDB
		err := rows.Scan(
			&alertModel.ID,
			&alertModel.EmployeeID,
			&alertModel.AlertDate,
			&alertModel.MinutesDriven,
			&alertModel.CapMinutes,
			&alertModel.Message,
			&alertModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected availability repository list cap alerts error: %w", err)
		}
		alertModels = append(alertModels, alertModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected availability repository list cap alerts error: %w", err)
	}

	return ToDomainList(alertModels), nil
}
