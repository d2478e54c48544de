package shift_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	shiftEntity, err := h.service.GetShift(r.Context(), Id)
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrShiftNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shift.ErrInvalidShiftID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shiftDTO := dto.Shift{
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shiftDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
