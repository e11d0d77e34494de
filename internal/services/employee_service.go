package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/store"
)

// EmployeeService handles employee requests against the store
type EmployeeService struct {
	store *store.Store
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(s *store.Store) *EmployeeService {
	return &EmployeeService{store: s}
}

func (s *EmployeeService) ListEmployees(ctx context.Context, limit int) ([]models.Employee, error) {
	return await(ctx, s.store.ListEmployees(limit))
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (models.Employee, error) {
	return await(ctx, s.store.GetEmployee(id))
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	return await(ctx, s.store.CreateEmployee(draft))
}

// UpdateEmployee edits an employee and returns the stored result
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, draft models.EmployeeDraft) (models.Employee, error) {
	edit := s.store.EditEmployee(id, draft)
	get := s.store.GetEmployee(id)

	if _, err := await(ctx, edit); err != nil {
		return models.Employee{}, err
	}
	return await(ctx, get)
}

// DeleteEmployee removes an employee and unassigns their tasks
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	_, err := await(ctx, s.store.DeleteEmployee(id))
	return err
}
