package employee_put

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
	var employeeUpdateDTO dto.EmployeeUpdate
	err := json.NewDecoder(r.Body).Decode(&employeeUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	employeeModifyEntity := entities.EmployeeModify{
		ID: &employeeUpdateDTO.ID,
	}

	// Опциональные параметры
	if employeeUpdateDTO.Name != nil {
		employeeModifyEntity.Name = employeeUpdateDTO.Name
	}
	if employeeUpdateDTO.Role != nil {
		roleType := entities.EmployeeRoleType(*employeeUpdateDTO.Role)
		employeeModifyEntity.Role = &roleType
	}
	if employeeUpdateDTO.Active != nil {
		employeeModifyEntity.Active = employeeUpdateDTO.Active
	}
	if employeeUpdateDTO.PairedEmployeeID != nil {
		employeeModifyEntity.PairedEmployeeID = employeeUpdateDTO.PairedEmployeeID
	}

	res, err := h.service.UpdateEmployee(r.Context(), employeeModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrMissingRequiredFields),
			errors.Is(err, employee.ErrInvalidEmployeeID),
			errors.Is(err, employee.ErrInvalidName),
			errors.Is(err, employee.ErrInvalidRole),
			errors.Is(err, employee.ErrMissingPairedEmployee):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, employee.ErrEmployeeNotFound),
			errors.Is(err, employee.ErrUnknownPairedID):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, employee.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Employee{
		ID:               res.ID,
		Name:             res.Name,
		Role:             res.Role.String(),
		Active:           res.Active,
		PairedEmployeeID: res.PairedEmployeeID,
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
