package shift_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shiftservice/internal/entities"
	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/shift"
	"shiftservice/pkg/logger"
)

const scheduledDateLayout = "2006-01-02"

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
	var shiftCreateDTO dto.ShiftCreate
	err := json.NewDecoder(r.Body).Decode(&shiftCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduledDate, err := time.Parse(scheduledDateLayout, shiftCreateDTO.ScheduledDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shiftModifyEntity := entities.DynamicShiftModify{
		RouteID:         &shiftCreateDTO.RouteID,
		ScheduledDate:   &scheduledDate,
		StartTime:       &shiftCreateDTO.StartTime,
		DurationMinutes: &shiftCreateDTO.DurationMinutes,
	}

	// Опциональный лимит, сервис подставит дефолт
	if shiftCreateDTO.DrivingCapMinutes != nil {
		shiftModifyEntity.DrivingCapMin = shiftCreateDTO.DrivingCapMinutes
	}

	shiftEntity, err := h.service.CreateShift(r.Context(), shiftModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrMissingRequiredFields),
			errors.Is(err, shift.ErrInvalidRouteID),
			errors.Is(err, shift.ErrInvalidDate),
			errors.Is(err, shift.ErrInvalidStartTime),
			errors.Is(err, shift.ErrInvalidDuration),
			errors.Is(err, shift.ErrInvalidDrivingCap):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shift.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shift.ErrRouteUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Shift{
		ID:                shiftEntity.ID,
		RouteID:           shiftEntity.RouteID,
		ScheduledDate:     shiftEntity.ScheduledDate.Format(scheduledDateLayout),
		StartTime:         shiftEntity.StartTime,
		DurationMinutes:   shiftEntity.DurationMinutes,
		DrivingCapMinutes: shiftEntity.DrivingCapMin,
		Status:            shiftEntity.Status.String(),
		AssignedAt:        shiftEntity.AssignedAt,
		CompletedAt:       shiftEntity.CompletedAt,
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
