package employee

import (
	"context"
	"fmt"

	"shiftservice/internal/entities"
)

type Employee struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Employee {
	return &Employee{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Employee) CreateEmployee(ctx context.Context, employeeModify entities.EmployeeModify) (int64, error) {
	if employeeModify.Name == nil ||
		employeeModify.Role == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*employeeModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidRole(employeeModify.Role.String()) {
		return 0, ErrInvalidRole
	}
	if !hasRequiredPairing(*employeeModify.Role, employeeModify.PairedEmployeeID) {
		return 0, ErrMissingPairedEmployee
	}

	id, err := s.repository.Create(ctx, employeeModify)
	if err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}

	return id, nil
}

func (s *Employee) UpdateEmployee(ctx context.Context, employeeModify entities.EmployeeModify) (*entities.Employee, error) {
	if employeeModify.Name == nil &&
		employeeModify.Role == nil &&
		employeeModify.Active == nil &&
		employeeModify.PairedEmployeeID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if employeeModify.Name != nil && !isValidName(*employeeModify.Name) {
		return nil, ErrInvalidName
	}
	if employeeModify.Role != nil && !isValidRole(employeeModify.Role.String()) {
		return nil, ErrInvalidRole
	}
	// Перевод в escort возможен только вместе с указанием пары.
	if employeeModify.Role != nil && !hasRequiredPairing(*employeeModify.Role, employeeModify.PairedEmployeeID) {
		return nil, ErrMissingPairedEmployee
	}

	employee, err := s.repository.Update(ctx, employeeModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *Employee) GetEmployee(ctx context.Context, id int64) (*entities.Employee, error) {
	employee, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

func (s *Employee) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	employees, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return employees, nil
}
