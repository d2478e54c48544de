package availability

import (
	"shiftservice/internal/entities"
)

func ToDomain(a *CapAlertDB) *entities.CapAlert {
	if a == nil {
		return nil
	}

	return &entities.CapAlert{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		AlertDate:     a.AlertDate,
		MinutesDriven: a.MinutesDriven,
		CapMinutes:    a.CapMinutes,
		Message:       a.Message,
		CreatedAt:     a.CreatedAt,
	}
}

func ToDomainList(alertsDB []CapAlertDB) []entities.CapAlert {
	result := make([]entities.CapAlert, len(alertsDB))
	for i, alertDB := range alertsDB {
		result[i] = *ToDomain(&alertDB)
	}
	return result
}
