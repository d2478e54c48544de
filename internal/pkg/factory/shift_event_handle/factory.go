package shift_event_handle

import (
	"context"
	"fmt"

	"shiftservice/internal/entities"
	"shiftservice/internal/service/shiftevent"
)

type EventHandlerFactory struct {
	assignmentService shiftevent.AssignmentService
	drivingLogService shiftevent.DrivingLogService
}

func NewEventHandlerFactory(
	assignmentService shiftevent.AssignmentService,
	drivingLogService shiftevent.DrivingLogService,
) *EventHandlerFactory {
	return &EventHandlerFactory{
		assignmentService: assignmentService,
		drivingLogService: drivingLogService,
	}
}

func (f *EventHandlerFactory) GetHandler(event entities.ShiftEventType) (shiftevent.ExecuteFn, error) {
	switch event {
	case entities.EventSegmentCompleted:
		return f.segmentCompletedHandler, nil
	case entities.EventShiftCompleted:
		return f.shiftCompletedHandler, nil
	case entities.EventShiftCancelled:
		return f.shiftCancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", shiftevent.ErrUndefinedEvent, event)
	}
}

func (f *EventHandlerFactory) segmentCompletedHandler(ctx context.Context, event entities.ShiftEvent) error {
	logModify := entities.DrivingLogModify{
		EmployeeID:    &event.EmployeeID,
		ShiftID:       &event.ShiftID,
		LogDate:       &event.Date,
		MinutesDriven: &event.MinutesDriven,
		MinutesRested: &event.MinutesRested,
	}

	_, err := f.drivingLogService.AppendLog(ctx, logModify)
	if err != nil {
		return fmt.Errorf("append driving log for shift %d: %w", event.ShiftID, err)
	}
	return nil
}

func (f *EventHandlerFactory) shiftCompletedHandler(ctx context.Context, event entities.ShiftEvent) error {
	err := f.assignmentService.CompleteShift(ctx, event.ShiftID)
	if err != nil {
		return fmt.Errorf("complete shift %d: %w", event.ShiftID, err)
	}
	return nil
}

func (f *EventHandlerFactory) shiftCancelledHandler(ctx context.Context, event entities.ShiftEvent) error {
	_, err := f.assignmentService.ShiftUnassign(ctx, event.ShiftID)
	if err != nil {
		return fmt.Errorf("unassign cancelled shift %d: %w", event.ShiftID, err)
	}
	return nil
}
