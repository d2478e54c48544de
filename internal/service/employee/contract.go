//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=employee_test
package employee

import (
	"context"

	"shiftservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, employeeModifyEntity entities.EmployeeModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Employee, error)
	GetAll(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, employeeModifyEntity entities.EmployeeModify) (*entities.Employee, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
