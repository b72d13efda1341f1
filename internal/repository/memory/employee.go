package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if err := checkCtx(ctx, "get employee"); err != nil {
		return employee.Employee{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if err := checkCtx(ctx, "create employee"); err != nil {
		return employee.Employee{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		switch {
		case existing.Username == newEmployee.Username:
			return employee.Employee{}, employee.ErrUsernameExists
		case existing.Email == newEmployee.Email:
			return employee.Employee{}, employee.ErrEmailExists
		case existing.NIP == newEmployee.NIP:
			return employee.Employee{}, employee.ErrNIPExists
		}
	}

	now := r.store.now()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	if newEmployee.EmploymentStatus == "" {
		newEmployee.EmploymentStatus = employee.EmploymentStatusActive
	}

	r.store.employees[newEmployee.ID] = newEmployee
	r.store.journal(ctx, func() { delete(r.store.employees, newEmployee.ID) })

	return newEmployee, nil
}

// UpdateWorkTimes implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateWorkTimes(ctx context.Context, id string, startWorkTime, breakTime, endWorkTime *string) error {
	if err := checkCtx(ctx, "update employee work times"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prev, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}

	updated := prev
	updated.StartWorkTime = startWorkTime
	updated.BreakTime = breakTime
	updated.EndWorkTime = endWorkTime
	updated.UpdatedAt = r.store.now()

	r.store.employees[id] = updated
	r.store.journal(ctx, func() { r.store.employees[id] = prev })
	return nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	if err := checkCtx(ctx, "list employees"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var employees []employee.Employee
	for _, emp := range r.store.employees {
		if emp.EmploymentStatus == employee.EmploymentStatusActive {
			employees = append(employees, emp)
		}
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].FullName < employees[j].FullName })
	return employees, nil
}
