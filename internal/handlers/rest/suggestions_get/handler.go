package suggestions_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shiftservice/internal/generated/dto"
	"shiftservice/internal/service/suggestion"
	"shiftservice/pkg/logger"
)

const reportDateLayout = "2006-01-02"

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

	date, err := time.Parse(reportDateLayout, dateParam)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	report, err := h.service.WeeklyReport(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, suggestion.ErrInvalidDate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	unassignedEmployees := make([]dto.Employee, 0, len(report.UnassignedEmployees))
	for _, employeeEntity := range report.UnassignedEmployees {
		unassignedEmployees = append(unassignedEmployees, dto.Employee{
			ID:               employeeEntity.ID,
			Name:             employeeEntity.Name,
			Role:             employeeEntity.Role.String(),
			Active:           employeeEntity.Active,
			PairedEmployeeID: employeeEntity.PairedEmployeeID,
		})
	}

	uncoveredShifts := make([]dto.UncoveredShift, 0, len(report.UncoveredShifts))
	for _, uncoveredEntity := range report.UncoveredShifts {
		uncoveredShifts = append(uncoveredShifts, dto.UncoveredShift{
			Shift: dto.Shift{
				ID:                uncoveredEntity.Shift.ID,
				RouteID:           uncoveredEntity.Shift.RouteID,
				ScheduledDate:     uncoveredEntity.Shift.ScheduledDate.Format(reportDateLayout),
				StartTime:         uncoveredEntity.Shift.StartTime,
				DurationMinutes:   uncoveredEntity.Shift.DurationMinutes,
				DrivingCapMinutes: uncoveredEntity.Shift.DrivingCapMin,
				Status:            uncoveredEntity.Shift.Status.String(),
				AssignedAt:        uncoveredEntity.Shift.AssignedAt,
				CompletedAt:       uncoveredEntity.Shift.CompletedAt,
			},
			AssignedCount: uncoveredEntity.AssignedCount,
			MinCoverage:   uncoveredEntity.MinCoverage,
		})
	}

	response := dto.SuggestionsResponse{
		WeekStart:           report.WeekStart.Format(reportDateLayout),
		WeekEnd:             report.WeekEnd.Format(reportDateLayout),
		UnassignedEmployees: unassignedEmployees,
		UncoveredShifts:     uncoveredShifts,
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
