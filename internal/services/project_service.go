package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/store"
)

// ProjectService handles project requests against the store
type ProjectService struct {
	store *store.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(s *store.Store) *ProjectService {
	return &ProjectService{store: s}
}

// ListProjects returns up to limit projects in insertion order
func (s *ProjectService) ListProjects(ctx context.Context, limit int) ([]models.Project, error) {
	return await(ctx, s.store.ListProjects(limit))
}

// GetProject returns a single project
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	return await(ctx, s.store.GetProject(id))
}

// CreateProject adds a project
func (s *ProjectService) CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	return await(ctx, s.store.CreateProject(draft))
}

// UpdateProject edits a project and returns its new state. The read is queued
// right behind the edit, so nothing else runs between the two.
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, draft models.ProjectDraft) (models.Project, error) {
	edit := s.store.EditProject(id, draft)
	get := s.store.GetProject(id)

	if _, err := await(ctx, edit); err != nil {
		return models.Project{}, err
	}
	return await(ctx, get)
}

// DeleteProject removes a project along with its tasks
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	_, err := await(ctx, s.store.DeleteProject(id))
	return err
}

// ListProjectTasks returns the tasks of one project with their references resolved
func (s *ProjectService) ListProjectTasks(ctx context.Context, id uuid.UUID, limit int) ([]models.TaskDetail, error) {
	return await(ctx, s.store.ListProjectTaskDetails(id, limit))
}
