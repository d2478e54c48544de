package shift_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shiftservice/internal/entities"
	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/assignment"
	"shiftservice/internal/service/employee"
	"shiftservice/internal/service/shift"
	"shiftservice/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var assignDTO dto.ShiftAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	role := entities.EmployeeRoleType(assignDTO.RoleInShift)

	result, err := h.service.ShiftAssign(r.Context(), assignDTO.ShiftID, assignDTO.EmployeeID, role)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidShiftID),
			errors.Is(err, assignment.ErrInvalidEmployeeID),
			errors.Is(err, assignment.ErrInvalidRoleInShift):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrUnknownShiftEmployee),
			errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, shift.ErrShiftNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrEmployeeNotEligible),
			errors.Is(err, assignment.ErrShiftNotAssignable),
			errors.Is(err, assignment.ErrDuplicateAssignment):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShiftAssignResponse{
		AssignmentID: result.AssignmentID,
		ShiftID:      result.ShiftID,
		EmployeeID:   result.EmployeeID,
		RoleInShift:  result.RoleInShift.String(),
		AssignedAt:   result.AssignedAt,
		ShiftStatus:  result.ShiftStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
