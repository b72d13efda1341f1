package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, full_name, username, email, nip, phone_number, address, division, dob,
	shift, start_work_time, break_time, end_work_time, employment_status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Username, &emp.Email, &emp.NIP, &emp.PhoneNumber, &emp.Address,
		&emp.Division, &emp.DateOfBirth, &emp.Shift, &emp.StartWorkTime, &emp.BreakTime, &emp.EndWorkTime,
		&emp.EmploymentStatus, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.CreatedAt, emp.UpdatedAt = emp.CreatedAt.UTC(), emp.UpdatedAt.UTC()
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, storeError("get employee", err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.EmploymentStatus == "" {
		newEmployee.EmploymentStatus = employee.EmploymentStatusActive
	}

	query := `
		INSERT INTO employees (
			id, full_name, username, email, nip, phone_number, address, division, dob,
			shift, start_work_time, break_time, end_work_time, employment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.FullName, newEmployee.Username, newEmployee.Email, newEmployee.NIP,
		newEmployee.PhoneNumber, newEmployee.Address, newEmployee.Division, newEmployee.DateOfBirth,
		newEmployee.Shift, newEmployee.StartWorkTime, newEmployee.BreakTime, newEmployee.EndWorkTime,
		newEmployee.EmploymentStatus,
	))
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			switch constraint {
			case "employees_username_key":
				return employee.Employee{}, employee.ErrUsernameExists
			case "employees_email_key":
				return employee.Employee{}, employee.ErrEmailExists
			case "employees_nip_key":
				return employee.Employee{}, employee.ErrNIPExists
			}
		}
		return employee.Employee{}, storeError("create employee", err)
	}
	return created, nil
}

// UpdateWorkTimes implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateWorkTimes(ctx context.Context, id string, startWorkTime, breakTime, endWorkTime *string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET start_work_time = $1, break_time = $2, end_work_time = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, startWorkTime, breakTime, endWorkTime, id)
	if err != nil {
		return storeError(fmt.Sprintf("update work times of employee %s", id), err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employment_status = $1 ORDER BY full_name`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, storeError("list active employees", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, storeError("list active employees", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("list active employees", err)
	}

	return employees, nil
}
