package employees_get

import (
	"encoding/json"
	"net/http"

	"shiftservice/internal/generated/dto"
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
	employeeEntities, err := h.service.GetEmployees(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	employeeDTOs := make([]dto.Employee, len(employeeEntities))
	for i, employeeEntity := range employeeEntities {
		employeeDTOs[i].ID = employeeEntity.ID
		employeeDTOs[i].Name = employeeEntity.Name
		employeeDTOs[i].Role = employeeEntity.Role.String()
		employeeDTOs[i].Active = employeeEntity.Active
		employeeDTOs[i].PairedEmployeeID = employeeEntity.PairedEmployeeID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(employeeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
