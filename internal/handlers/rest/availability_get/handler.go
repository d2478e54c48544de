package availability_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/availability"
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
	vars := mux.Vars(r)

	shiftID, err := strconv.ParseInt(vars["shift_id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	employeeID, err := strconv.ParseInt(vars["employee_id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	verdict, err := h.service.CheckEmployee(r.Context(), employeeID, shiftID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidEmployeeID),
			errors.Is(err, availability.ErrInvalidShiftID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, shift.ErrShiftNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AvailabilityResponse{
		EmployeeID:         verdict.EmployeeID,
		ShiftID:            verdict.ShiftID,
		Eligible:           verdict.Eligible,
		MinutesDrivenToday: verdict.MinutesDrivenToday,
	}

	if verdict.Reason != "" {
		response.ReasonIfIneligible = &verdict.Reason
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
