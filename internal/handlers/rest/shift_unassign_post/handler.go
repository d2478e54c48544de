package shift_unassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/assignment"
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
	var unassignDTO dto.ShiftUnassignRequest
	err := json.NewDecoder(r.Body).Decode(&unassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ShiftUnassign(r.Context(), unassignDTO.ShiftID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidShiftID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAssignmentNotFound),
			errors.Is(err, shift.ErrShiftNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShiftUnassignResponse{
		ShiftID:     result.ShiftID,
		Removed:     result.Removed,
		ShiftStatus: result.ShiftStatus.String(),
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
