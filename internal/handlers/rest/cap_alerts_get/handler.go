package cap_alerts_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/availability"
	"shiftservice/pkg/logger"
)

const alertDateLayout = "2006-01-02"

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
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := time.Parse(alertDateLayout, dateParam)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	alerts, err := h.service.CapAlertsForDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.CapAlert, 0, len(alerts))
	for _, alertEntity := range alerts {
		response = append(response, dto.CapAlert{
			ID:            alertEntity.ID,
			EmployeeID:    alertEntity.EmployeeID,
			AlertDate:     alertEntity.AlertDate.Format(alertDateLayout),
			MinutesDriven: alertEntity.MinutesDriven,
			CapMinutes:    alertEntity.CapMinutes,
			Message:       alertEntity.Message,
			CreatedAt:     alertEntity.CreatedAt,
		})
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
