package shift_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shiftservice/internal/entities"
	"shiftservice/internal/service/shift"
	"shiftservice/pkg/logger"
)

const eventDateLayout = "2006-01-02"

type Handler struct {
	eventService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventService:             eventService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("shift.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shift.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event shiftEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shift.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shift", event.ShiftID),
		logger.NewField("event", event.Event),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shift.events processing")

	eventDate, err := time.Parse(eventDateLayout, event.Date)
	if err != nil && event.Date != "" {
		msgLog.With(
			logger.NewField("error", err),
		).Error("shift.events handler received bad event date")
		sess.MarkMessage(message, "")
		return false
	}

	eventEntity := entities.ShiftEvent{
		Event:         entities.ShiftEventType(event.Event),
		ShiftID:       event.ShiftID,
		EmployeeID:    event.EmployeeID,
		Date:          eventDate,
		MinutesDriven: event.MinutesDriven,
		MinutesRested: event.MinutesRested,
	}

	err = h.eventService.ProcessShiftEvent(ctx, eventEntity)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shift.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shift.ErrShiftNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shift.events handler shift not found for event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shift.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shift.events: processed")

	sess.MarkMessage(message, "")
	return false
}
