package assignment

import (
	"context"
	"fmt"
	"time"

	"shiftservice/internal/entities"
)

type Assignment struct {
	repository          Repository
	availabilityService AvailabilityService
	shiftService        ShiftService
	txManager           TxManager
}

func New(
	repository Repository,
	availabilityService AvailabilityService,
	shiftService ShiftService,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		repository:          repository,
		availabilityService: availabilityService,
		shiftService:        shiftService,
		txManager:           txManager,
	}
}

func (a *Assignment) ShiftAssign(ctx context.Context, shiftID, employeeID int64, role entities.EmployeeRoleType) (*entities.ShiftAssignmentResult, error) {
	if shiftID <= 0 {
		return nil, ErrInvalidShiftID
	}
	if employeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	if !isValidRoleInShift(role.String()) {
		return nil, ErrInvalidRoleInShift
	}

	assignmentResult := entities.ShiftAssignmentResult{}

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		// Перепроверка допустимости внутри транзакции: защита от гонки с
		// параллельным assign, уникальный индекс в Create страхует остальное
		verdict, err := a.availabilityService.CheckEmployee(ctx, employeeID, shiftID)
		if err != nil {
			return fmt.Errorf("check availability: %w", err)
		}
		if !verdict.Eligible {
			return fmt.Errorf("%w: %s", ErrEmployeeNotEligible, verdict.Reason)
		}

		shift, err := a.shiftService.GetShift(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("get shift: %w", err)
		}
		if shift.Status != entities.ShiftPending && shift.Status != entities.ShiftAssigned {
			return fmt.Errorf("%w: %s", ErrShiftNotAssignable, shift.Status)
		}

		assignedAt := time.Now().UTC()
		activeStatus := entities.AssignmentActive
		assignmentModify := entities.ShiftAssignmentModify{
			ShiftID:     &shiftID,
			EmployeeID:  &employeeID,
			RoleInShift: &role,
			Status:      &activeStatus,
			AssignedAt:  &assignedAt,
		}

		created, err := a.repository.Create(ctx, assignmentModify)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		shiftStatus := shift.Status
		if shift.Status == entities.ShiftPending {
			updatedShift, err := a.shiftService.UpdateShiftStatus(ctx, shiftID, entities.ShiftAssigned)
			if err != nil {
				return fmt.Errorf("update shift status: %w", err)
			}
			shiftStatus = updatedShift.Status
		}

		assignmentResult = entities.ShiftAssignmentResult{
			AssignmentID: created.ID,
			ShiftID:      created.ShiftID,
			EmployeeID:   created.EmployeeID,
			RoleInShift:  created.RoleInShift,
			AssignedAt:   created.AssignedAt,
			ShiftStatus:  shiftStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignmentResult, nil
}

func (a *Assignment) ShiftUnassign(ctx context.Context, shiftID int64) (*entities.ShiftUnassignmentResult, error) {
	if shiftID <= 0 {
		return nil, ErrInvalidShiftID
	}

	unassignmentResult := entities.ShiftUnassignmentResult{}

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := a.shiftService.GetShift(ctx, shiftID); err != nil {
			return fmt.Errorf("get shift: %w", err)
		}

		removed, err := a.repository.DeleteActiveByShiftID(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		if removed == 0 {
			return ErrAssignmentNotFound
		}

		updatedShift, err := a.shiftService.UpdateShiftStatus(ctx, shiftID, entities.ShiftPending)
		if err != nil {
			return fmt.Errorf("update shift status: %w", err)
		}

		unassignmentResult = entities.ShiftUnassignmentResult{
			ShiftID:     shiftID,
			Removed:     removed,
			ShiftStatus: updatedShift.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &unassignmentResult, nil
}

// CompleteShift закрывает смену по событию shift_completed: активные
// назначения завершаются, смена уходит в терминальный completed.
func (a *Assignment) CompleteShift(ctx context.Context, shiftID int64) error {
	if shiftID <= 0 {
		return ErrInvalidShiftID
	}

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := a.repository.CompleteActiveByShiftID(ctx, shiftID); err != nil {
			return fmt.Errorf("complete assignments: %w", err)
		}

		if _, err := a.shiftService.UpdateShiftStatus(ctx, shiftID, entities.ShiftCompleted); err != nil {
			return fmt.Errorf("update shift status: %w", err)
		}
		return nil
	})

	return err
}
