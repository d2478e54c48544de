package drivinglog

import (
	"shiftservice/internal/entities"
)

func FromDomainModify(logModify *entities.DrivingLogModify) *DrivingLogModifyDB {
	if logModify == nil {
		return nil
	}
	logDB := &DrivingLogModifyDB{}

	if logModify.ID != nil {
		logDB.ID = logModify.ID
	}
	if logModify.EmployeeID != nil {
		logDB.EmployeeID = logModify.EmployeeID
	}
	if logModify.ShiftID != nil {
		logDB.ShiftID = logModify.ShiftID
	}
	if logModify.LogDate != nil {
		logDB.LogDate = logModify.LogDate
	}
	if logModify.MinutesDriven != nil {
		logDB.MinutesDriven = logModify.MinutesDriven
	}
	if logModify.MinutesRested != nil {
		logDB.MinutesRested = logModify.MinutesRested
	}

	return logDB
}
