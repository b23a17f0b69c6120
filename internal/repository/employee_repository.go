package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spec-kit/staff-service/internal/domain"
)

// EmployeeRepository is the deliberately permissive lower layer over the
// alternate employee schema. It matches records by identifier only and
// applies no format validation.
type EmployeeRepository interface {
	GetEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id int) (*domain.Employee, error)
	AddEmployee(ctx context.Context, emp *domain.Employee) error
	UpdateEmployee(ctx context.Context, emp *domain.Employee) error
	DeleteEmployee(ctx context.Context, id int) (*domain.Employee, error)
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository wraps the sqlite-backed employee store.
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, date_of_birth, gender_id, department_id
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.FirstName,
			&emp.LastName,
			&emp.Email,
			&emp.DateOfBirth,
			&emp.GenderID,
			&emp.DepartmentID,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, date_of_birth, gender_id, department_id
		FROM employees WHERE id = ?`, id).Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.DateOfBirth,
		&emp.GenderID,
		&emp.DepartmentID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &emp, nil
}

func (r *employeeRepository) AddEmployee(ctx context.Context, emp *domain.Employee) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (first_name, last_name, email, date_of_birth, gender_id, department_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.DateOfBirth,
		emp.GenderID,
		emp.DepartmentID,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert employee id: %w", err)
	}
	emp.ID = int(lastID)
	return nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, emp *domain.Employee) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET first_name = ?, last_name = ?, email = ?, date_of_birth = ?, gender_id = ?, department_id = ?
		WHERE id = ?`,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.DateOfBirth,
		emp.GenderID,
		emp.DepartmentID,
		emp.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update employee rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	emp, err := r.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete employee: %w", err)
	}
	return emp, nil
}
