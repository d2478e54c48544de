package assignment

import (
	"context"
	"fmt"

	"shiftservice/internal/entities"
	"shiftservice/internal/repository"
	"shiftservice/internal/service/assignment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, assignmentModifyEntity entities.ShiftAssignmentModify) (*entities.ShiftAssignment, error) {
	assignmentModifyModel := FromDomainModify(&assignmentModifyEntity)

	query := `
		INSERT INTO shift_assignments (dynamic_shift_id, employee_id, role_in_shift, status, assigned_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, dynamic_shift_id, employee_id, role_in_shift, status, assigned_at, completed_at
	`

	var assignmentModel ShiftAssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		assignmentModifyModel.ShiftID,
		assignmentModifyModel.EmployeeID,
		assignmentModifyModel.RoleInShift,
		assignmentModifyModel.Status,
		assignmentModifyModel.AssignedAt,
	).Scan(
		&assignmentModel.ID,
		&assignmentModel.ShiftID,
		&assignmentModel.EmployeeID,
		&assignmentModel.RoleInShift,
		&assignmentModel.Status,
		&assignmentModel.AssignedAt,
		&assignmentModel.CompletedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrDuplicateAssignment
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, assignment.ErrUnknownShiftEmployee
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

// DeleteActiveByShiftID снимает все активные назначения смены.
func (r *Repository) DeleteActiveByShiftID(ctx context.Context, shiftID int64) (int64, error) {
	query := `
		DELETE FROM shift_assignments
		WHERE dynamic_shift_id = $1 AND status = 'assigned'
	`

	result, err := r.querier.Exec(ctx, query, shiftID)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository delete active error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CompleteActiveByShiftID(ctx context.Context, shiftID int64) (int64, error) {
	query := `
		UPDATE shift_assignments
		SET status = 'completed',
			completed_at = NOW()
		WHERE dynamic_shift_id = $1 AND status = 'assigned'
	`

	result, err := r.querier.Exec(ctx, query, shiftID)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository complete active error: %w", err)
	}

	return result.RowsAffected(), nil
}
