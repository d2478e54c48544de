package employee

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shiftservice/internal/entities"
	"shiftservice/internal/repository"
	"shiftservice/internal/service/employee"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, employeeModifyEntity entities.EmployeeModify) (int64, error) {
	employeeModifyModel := FromDomainModify(&employeeModifyEntity)
	query := `INSERT INTO employees (name, role, active, paired_employee_id)
		VALUES ($1, $2, COALESCE($3, TRUE), $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		employeeModifyModel.Name,
		employeeModifyModel.Role,
		employeeModifyModel.Active,
		employeeModifyModel.PairedEmployeeID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, employee.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, employee.ErrUnknownPairedID
		}
		return 0, fmt.Errorf("unexpected employee repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, employeeModifyEntity entities.EmployeeModify) (*entities.Employee, error) {
	employeeModifyModel := FromDomainModify(&employeeModifyEntity)

	builder := qb.
		Update("employees")

	// опционнные поля
	if employeeModifyModel.Name != nil {
		builder = builder.Set("name", employeeModifyModel.Name)
	}
	if employeeModifyModel.Role != nil {
		builder = builder.Set("role", employeeModifyModel.Role)
	}
	if employeeModifyModel.Active != nil {
		builder = builder.Set("active", employeeModifyModel.Active)
	}
	if employeeModifyModel.PairedEmployeeID != nil {
		builder = builder.Set("paired_employee_id", employeeModifyModel.PairedEmployeeID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"ID": employeeModifyModel.ID}).
		Suffix("RETURNING ID, name, role, active, paired_employee_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected employee repository update error: %w", err)
	}

	var employeeModel EmployeeDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&employeeModel.ID,
			&employeeModel.Name,
			&employeeModel.Role,
			&employeeModel.Active,
			&employeeModel.PairedEmployeeID,
			&employeeModel.CreatedAt,
			&employeeModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, employee.ErrConflict
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, employee.ErrUnknownPairedID
		}

		return nil, fmt.Errorf("unexpected employee repository update error: %w", err)
	}

	return ToDomain(&employeeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Employee, error) {
	query := `SELECT id, name, role, active, paired_employee_id, created_at, updated_at
		FROM employees
		WHERE id = $1`

	var employeeModel EmployeeDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&employeeModel.ID,
			&employeeModel.Name,
			&employeeModel.Role,
			&employeeModel.Active,
			&employeeModel.PairedEmployeeID,
			&employeeModel.CreatedAt,
			&employeeModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}

		return nil, fmt.Errorf("unexpected employee repository getbyid error: %w", err)
	}

	return ToDomain(&employeeModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Employee, error) {
	query := `
	SELECT id, name, role, active, paired_employee_id, created_at, updated_at
	FROM employees
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected employee repository getall error: %w", err)
	}
	defer rows.Close()

	// начальная емкость, getall может вернуть очень много
	// так и мало, не знаю какая золотая середина
	employeeModels := make([]EmployeeDB, 0, 8)
	for rows.Next() {
		var employeeModel EmployeeDB
		err := rows.Scan(
			&employeeModel.ID,
			&employeeModel.Name,
			&employeeModel.Role,
			&employeeModel.Active,
			&employeeModel.PairedEmployeeID,
			&employeeModel.CreatedAt,
			&employeeModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected employee repository getall error: %w", err)
		}
		employeeModels = append(employeeModels, employeeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected employee repository getall error: %w", err)
	}

	return ToDomainList(employeeModels), nil
}
