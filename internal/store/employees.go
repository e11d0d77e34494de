package store

import (
	"slices"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
)

func employeeNotFound() error {
	return apierrors.NotFound("employee not found")
}

// ListEmployees returns employees oldest-first, at most limit of them
// (limit <= 0 returns all). It never fails.
func (s *Store) ListEmployees(limit int) *Future[[]models.Employee] {
	return submit(s, "list_employees", func() ([]models.Employee, error) {
		return truncate(s.employees, limit, identity[models.Employee]), nil
	})
}

// GetEmployee returns a single employee
func (s *Store) GetEmployee(id uuid.UUID) *Future[models.Employee] {
	return submit(s, "get_employee", func() (models.Employee, error) {
		idx := s.employeeIndex(id)
		if idx < 0 {
			return models.Employee{}, employeeNotFound()
		}
		return s.employees[idx], nil
	})
}

// CreateEmployee appends a new employee with a freshly generated id
func (s *Store) CreateEmployee(draft models.EmployeeDraft) *Future[models.Employee] {
	return submit(s, "create_employee", func() (models.Employee, error) {
		draft = draft.Normalize()
		if err := draft.Validate(); err != nil {
			return models.Employee{}, invalid(err)
		}

		id, err := s.generateID("employee", func(id uuid.UUID) bool { return s.employeeIndex(id) >= 0 })
		if err != nil {
			return models.Employee{}, err
		}

		employee := draft.Apply(models.Employee{ID: id})
		s.employees = append(s.employees, employee)

		s.logger.Info("employee created", "id", employee.ID, "full_name", employee.FullName())
		return employee, nil
	})
}

// EditEmployee replaces every mutable field of the employee in place
func (s *Store) EditEmployee(id uuid.UUID, patch models.EmployeeDraft) *Future[struct{}] {
	return submit(s, "edit_employee", func() (struct{}, error) {
		idx := s.employeeIndex(id)
		if idx < 0 {
			return struct{}{}, employeeNotFound()
		}

		patch = patch.Normalize()
		if err := patch.Validate(); err != nil {
			return struct{}{}, invalid(err)
		}

		s.employees[idx] = patch.Apply(s.employees[idx])

		s.logger.Info("employee updated", "id", id)
		return struct{}{}, nil
	})
}

// DeleteEmployee removes the employee and unassigns it from every task.
// The tasks themselves are kept.
func (s *Store) DeleteEmployee(id uuid.UUID) *Future[struct{}] {
	return submit(s, "delete_employee", func() (struct{}, error) {
		idx := s.employeeIndex(id)
		if idx < 0 {
			return struct{}{}, employeeNotFound()
		}

		s.employees = slices.Delete(s.employees, idx, idx+1)

		cleared := 0
		for i := range s.tasks {
			if s.tasks[i].HasEmployee(id) {
				s.tasks[i].EmployeeID = nil
				cleared++
			}
		}

		s.logger.Info("employee deleted", "id", id, "tasks_unassigned", cleared)
		return struct{}{}, nil
	})
}

func (s *Store) employeeIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.employees, func(e models.Employee) bool { return e.ID == id })
}
