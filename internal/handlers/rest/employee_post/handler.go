package employee_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shiftservice/internal/entities"
	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/employee"
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
	var employeeCreateDTO dto.EmployeeCreate
	err := json.NewDecoder(r.Body).Decode(&employeeCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	roleType := entities.EmployeeRoleType(employeeCreateDTO.Role)
	employeeModifyEntity := entities.EmployeeModify{
		Name:             &employeeCreateDTO.Name,
		Role:             &roleType,
		PairedEmployeeID: employeeCreateDTO.PairedEmployeeID,
	}

	id, err := h.service.CreateEmployee(r.Context(), employeeModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrMissingRequiredFields),
			errors.Is(err, employee.ErrInvalidName),
			errors.Is(err, employee.ErrInvalidRole),
			errors.Is(err, employee.ErrMissingPairedEmployee):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, employee.ErrUnknownPairedID):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, employee.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.EmployeeCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
