package assignment

import (
	"shiftservice/internal/entities"
)

func ToDomain(a *ShiftAssignmentDB) *entities.ShiftAssignment {
	if a == nil {
		return nil
	}

	return &entities.ShiftAssignment{
		ID:          a.ID,
		ShiftID:     a.ShiftID,
		EmployeeID:  a.EmployeeID,
		RoleInShift: entities.EmployeeRoleType(a.RoleInShift),
		Status:      entities.AssignmentStatusType(a.Status),
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
}

func FromDomainModify(assignmentModify *entities.ShiftAssignmentModify) *ShiftAssignmentModifyDB {
	if assignmentModify == nil {
		return nil
	}
	assignmentDB := &ShiftAssignmentModifyDB{}

	if assignmentModify.ID != nil {
		assignmentDB.ID = assignmentModify.ID
	}
	if assignmentModify.ShiftID != nil {
		assignmentDB.ShiftID = assignmentModify.ShiftID
	}
	if assignmentModify.EmployeeID != nil {
		assignmentDB.EmployeeID = assignmentModify.EmployeeID
	}
	if assignmentModify.RoleInShift != nil {
		role := assignmentModify.RoleInShift.String()
		assignmentDB.RoleInShift = &role
	}
	if assignmentModify.Status != nil {
		status := assignmentModify.Status.String()
		assignmentDB.Status = &status
	}
	if assignmentModify.AssignedAt != nil {
		assignmentDB.AssignedAt = assignmentModify.AssignedAt
	}

	return assignmentDB
}
