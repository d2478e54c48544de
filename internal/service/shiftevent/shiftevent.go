package shiftevent

import (
	"context"
	"errors"
	"fmt"

	"shiftservice/internal/entities"
)

type Service struct {
	eventFactory HandlerFactory
}

func New(eventFactory HandlerFactory) *Service {
	return &Service{
		eventFactory: eventFactory,
	}
}

func (s *Service) ProcessShiftEvent(ctx context.Context, event entities.ShiftEvent) error {
	if event.ShiftID <= 0 {
		return fmt.Errorf("shift id is required")
	}

	executeFn, err := s.eventFactory.GetHandler(event.Event)
	if err != nil {
		// незнакомые события просто пропускаем
		if errors.Is(err, ErrUndefinedEvent) {
			return nil
		}
		return err
	}

	return executeFn(ctx, event)
}
