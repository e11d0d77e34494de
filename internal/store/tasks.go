package store

import (
	"slices"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
)

func taskNotFound() error {
	return apierrors.NotFound("task not found")
}

// ListTasks returns tasks oldest-first, at most limit of them
// (limit <= 0 returns all). It never fails.
func (s *Store) ListTasks(limit int) *Future[[]models.Task] {
	return submit(s, "list_tasks", func() ([]models.Task, error) {
		return truncate(s.tasks, limit, models.Task.Clone), nil
	})
}

// ListTasksForProject returns the tasks of one project in insertion order
func (s *Store) ListTasksForProject(projectID uuid.UUID, limit int) *Future[[]models.Task] {
	return submit(s, "list_project_tasks", func() ([]models.Task, error) {
		if s.projectIndex(projectID) < 0 {
			return nil, projectNotFound()
		}
		return truncate(s.tasksOf(projectID), limit, models.Task.Clone), nil
	})
}

// ListTaskDetails returns tasks joined with their project and employee
func (s *Store) ListTaskDetails(limit int) *Future[[]models.TaskDetail] {
	return submit(s, "list_task_details", func() ([]models.TaskDetail, error) {
		return s.details(s.tasks, limit), nil
	})
}

// ListProjectTaskDetails is ListTaskDetails restricted to one project
func (s *Store) ListProjectTaskDetails(projectID uuid.UUID, limit int) *Future[[]models.TaskDetail] {
	return submit(s, "list_project_task_details", func() ([]models.TaskDetail, error) {
		if s.projectIndex(projectID) < 0 {
			return nil, projectNotFound()
		}
		return s.details(s.tasksOf(projectID), limit), nil
	})
}

// GetTask returns a single task
func (s *Store) GetTask(id uuid.UUID) *Future[models.Task] {
	return submit(s, "get_task", func() (models.Task, error) {
		idx := s.taskIndex(id)
		if idx < 0 {
			return models.Task{}, taskNotFound()
		}
		return s.tasks[idx].Clone(), nil
	})
}

// CreateTask appends a new task. The project, and the employee if one is
// given, must exist.
func (s *Store) CreateTask(draft models.TaskDraft) *Future[models.Task] {
	return submit(s, "create_task", func() (models.Task, error) {
		draft, err := s.checkTaskDraft(draft)
		if err != nil {
			return models.Task{}, err
		}

		id, err := s.generateID("task", func(id uuid.UUID) bool { return s.taskIndex(id) >= 0 })
		if err != nil {
			return models.Task{}, err
		}

		task := draft.Apply(models.Task{ID: id})
		s.tasks = append(s.tasks, task)

		s.logger.Info("task created", "id", task.ID, "project_id", task.ProjectID)
		return task.Clone(), nil
	})
}

// EditTask replaces every mutable field of the task in place
func (s *Store) EditTask(id uuid.UUID, patch models.TaskDraft) *Future[struct{}] {
	return submit(s, "edit_task", func() (struct{}, error) {
		idx := s.taskIndex(id)
		if idx < 0 {
			return struct{}{}, taskNotFound()
		}

		patch, err := s.checkTaskDraft(patch)
		if err != nil {
			return struct{}{}, err
		}

		s.tasks[idx] = patch.Apply(s.tasks[idx])

		s.logger.Info("task updated", "id", id)
		return struct{}{}, nil
	})
}

// DeleteTask removes a single task
func (s *Store) DeleteTask(id uuid.UUID) *Future[struct{}] {
	return submit(s, "delete_task", func() (struct{}, error) {
		idx := s.taskIndex(id)
		if idx < 0 {
			return struct{}{}, taskNotFound()
		}

		s.tasks = slices.Delete(s.tasks, idx, idx+1)

		s.logger.Info("task deleted", "id", id)
		return struct{}{}, nil
	})
}

// checkTaskDraft normalizes and validates a draft, then resolves its
// references against the live collections
func (s *Store) checkTaskDraft(draft models.TaskDraft) (models.TaskDraft, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return draft, invalid(err)
	}
	if s.projectIndex(draft.ProjectID) < 0 {
		return draft, projectNotFound()
	}
	if draft.EmployeeID != nil && s.employeeIndex(*draft.EmployeeID) < 0 {
		return draft, employeeNotFound()
	}
	return draft, nil
}

func (s *Store) taskIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *Store) tasksOf(projectID uuid.UUID) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) details(tasks []models.Task, limit int) []models.TaskDetail {
	out := make([]models.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		if limit > 0 && len(out) == limit {
			break
		}
		pIdx := s.projectIndex(t.ProjectID)
		if pIdx < 0 {
			continue
		}
		detail := models.TaskDetail{
			Task:    t.Clone(),
			Project: s.projects[pIdx],
		}
		if t.EmployeeID != nil {
			if eIdx := s.employeeIndex(*t.EmployeeID); eIdx >= 0 {
				employee := s.employees[eIdx]
				detail.Employee = &employee
			}
		}
		out = append(out, detail)
	}
	return out
}
