package employee

import (
	"shiftservice/internal/entities"
)

func ToDomain(e *EmployeeDB) *entities.Employee {
	if e == nil {
		return nil
	}

	return &entities.Employee{
		ID:               e.ID,
		Name:             e.Name,
		Role:             entities.EmployeeRoleType(e.Role),
		Active:           e.Active,
		PairedEmployeeID: e.PairedEmployeeID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromDomainModify(employeeModify *entities.EmployeeModify) *EmployeeModifyDB {
	if employeeModify == nil {
		return nil
	}
	employeeDB := &EmployeeModifyDB{}

	if employeeModify.ID != nil {
		employeeDB.ID = employeeModify.ID
	}
	if employeeModify.Name != nil {
		employeeDB.Name = employeeModify.Name
	}
	if employeeModify.Role != nil {
		role := employeeModify.Role.String()
		employeeDB.Role = &role
	}
	if employeeModify.Active != nil {
		employeeDB.Active = employeeModify.Active
	}
	if employeeModify.PairedEmployeeID != nil {
		employeeDB.PairedEmployeeID = employeeModify.PairedEmployeeID
	}

	return employeeDB
}

func ToDomainList(employeesDB []EmployeeDB) []entities.Employee {
	if len(employeesDB) == 0 {
		return []entities.Employee{}
	}

	result := make([]entities.Employee, len(employeesDB))
	for i, employeeDB := range employeesDB {
		result[i] = *ToDomain(&employeeDB)
	}
	return result
}
