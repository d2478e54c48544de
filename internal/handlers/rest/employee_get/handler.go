package employee_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	Id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	employeeEntity, err := h.service.GetEmployee(r.Context(), Id)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, employee.ErrInvalidEmployeeID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	employeeDTO := dto.Employee{
		ID:               employeeEntity.ID,
		Name:             employeeEntity.Name,
		Role:             employeeEntity.Role.String(),
		Active:           employeeEntity.Active,
		PairedEmployeeID: employeeEntity.PairedEmployeeID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(employeeDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
