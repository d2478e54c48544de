package driving_log_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shiftservice/internal/entities"
	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/drivinglog"
	"shiftservice/pkg/logger"
)

const logDateLayout = "2006-01-02"

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
	var logCreateDTO dto.DrivingLogCreate
	err := json.NewDecoder(r.Body).Decode(&logCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logDate, err := time.Parse(logDateLayout, logCreateDTO.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logModifyEntity := entities.DrivingLogModify{
		EmployeeID:    &logCreateDTO.EmployeeID,
		ShiftID:       &logCreateDTO.ShiftID,
		LogDate:       &logDate,
		MinutesDriven: &logCreateDTO.MinutesDriven,
		MinutesRested: &logCreateDTO.MinutesRested,
	}

	logID, err := h.service.AppendLog(r.Context(), logModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, drivinglog.ErrMissingRequiredFields),
			errors.Is(err, drivinglog.ErrInvalidEmployeeID),
			errors.Is(err, drivinglog.ErrInvalidShiftID),
			errors.Is(err, drivinglog.ErrInvalidDate),
			errors.Is(err, drivinglog.ErrInvalidMinutes):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, drivinglog.ErrUnknownReference):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DrivingLogCreateResponse{
		ID: logID,
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
