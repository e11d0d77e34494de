package store

import (
	"slices"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
)

func projectNotFound() error {
	return apierrors.NotFound("project not found")
}

// ListProjects returns projects oldest-first, at most limit of them
// (limit <= 0 returns all). It never fails.
func (s *Store) ListProjects(limit int) *Future[[]models.Project] {
	return submit(s, "list_projects", func() ([]models.Project, error) {
		return truncate(s.projects, limit, identity[models.Project]), nil
	})
}

// GetProject returns a single project
func (s *Store) GetProject(id uuid.UUID) *Future[models.Project] {
	return submit(s, "get_project", func() (models.Project, error) {
		idx := s.projectIndex(id)
		if idx < 0 {
			return models.Project{}, projectNotFound()
		}
		return s.projects[idx], nil
	})
}

// CreateProject appends a new project with a freshly generated id
func (s *Store) CreateProject(draft models.ProjectDraft) *Future[models.Project] {
	return submit(s, "create_project", func() (models.Project, error) {
		draft = draft.Normalize()
		if err := draft.Validate(); err != nil {
			return models.Project{}, invalid(err)
		}

		id, err := s.generateID("project", func(id uuid.UUID) bool { return s.projectIndex(id) >= 0 })
		if err != nil {
			return models.Project{}, err
		}

		project := draft.Apply(models.Project{ID: id})
		s.projects = append(s.projects, project)

		s.logger.Info("project created", "id", project.ID, "name", project.Name)
		return project, nil
	})
}

// EditProject replaces every mutable field of the project in place
func (s *Store) EditProject(id uuid.UUID, patch models.ProjectDraft) *Future[struct{}] {
	return submit(s, "edit_project", func() (struct{}, error) {
		idx := s.projectIndex(id)
		if idx < 0 {
			return struct{}{}, projectNotFound()
		}

		patch = patch.Normalize()
		if err := patch.Validate(); err != nil {
			return struct{}{}, invalid(err)
		}

		s.projects[idx] = patch.Apply(s.projects[idx])

		s.logger.Info("project updated", "id", id)
		return struct{}{}, nil
	})
}

// DeleteProject removes the project together with all of its tasks
func (s *Store) DeleteProject(id uuid.UUID) *Future[struct{}] {
	return submit(s, "delete_project", func() (struct{}, error) {
		idx := s.projectIndex(id)
		if idx < 0 {
			return struct{}{}, projectNotFound()
		}

		s.projects = slices.Delete(s.projects, idx, idx+1)

		before := len(s.tasks)
		s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool {
			return t.ProjectID == id
		})

		s.logger.Info("project deleted", "id", id, "tasks_deleted", before-len(s.tasks))
		return struct{}{}, nil
	})
}

func (s *Store) projectIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool { return p.ID == id })
}
