package services

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/store"
	"github.com/yukikurage/project-tracker/internal/utils"
)

// SettingsProvider supplies the current settings
type SettingsProvider interface {
	Load() models.Settings
}

// TaskService handles task requests against the store
type TaskService struct {
	store    *store.Store
	settings SettingsProvider
	now      func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(s *store.Store, settings SettingsProvider) *TaskService {
	return &TaskService{
		store:    s,
		settings: settings,
		now:      time.Now,
	}
}

// TaskInput is a task as submitted by a client, before any parsing
type TaskInput struct {
	Name           string
	ProjectID      string
	TimeToComplete int
	StartDate      string
	EndDate        string
	Status         string
	EmployeeID     *string
}

// TaskDefaults are the values a new task form starts from
type TaskDefaults struct {
	StartDate time.Time
	EndDate   time.Time
	Status    models.TaskStatus
}

// ParseTaskInput converts raw input into a draft. Every field that fails to
// parse is reported, keyed by its name.
func ParseTaskInput(input TaskInput) (models.TaskDraft, error) {
	draft := models.TaskDraft{
		Name:           input.Name,
		TimeToComplete: input.TimeToComplete,
	}
	errs := validation.Errors{}

	if id, err := uuid.Parse(strings.TrimSpace(input.ProjectID)); err != nil {
		errs["project_id"] = validation.NewError("validation_invalid_project_id", "project id must be a valid uuid")
	} else {
		draft.ProjectID = id
	}

	if d, err := utils.ParseDate(strings.TrimSpace(input.StartDate)); err != nil {
		errs["start_date"] = err
	} else {
		draft.StartDate = d
	}

	if d, err := utils.ParseDate(strings.TrimSpace(input.EndDate)); err != nil {
		errs["end_date"] = err
	} else {
		draft.EndDate = d
	}

	if status, err := models.ParseTaskStatus(input.Status); err != nil {
		errs["status"] = err
	} else {
		draft.Status = status
	}

	if input.EmployeeID != nil && strings.TrimSpace(*input.EmployeeID) != "" {
		if id, err := uuid.Parse(strings.TrimSpace(*input.EmployeeID)); err != nil {
			errs["employee_id"] = validation.NewError("validation_invalid_employee_id", "employee id must be a valid uuid")
		} else {
			draft.EmployeeID = &id
		}
	}

	if len(errs) > 0 {
		return models.TaskDraft{}, apierrors.Validation(errs.Error(), errs)
	}
	return draft, nil
}

// ListTasks returns tasks with their project and employee resolved
func (s *TaskService) ListTasks(ctx context.Context, limit int) ([]models.TaskDetail, error) {
	return await(ctx, s.store.ListTaskDetails(limit))
}

// GetTask returns a single task with its references resolved
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (models.TaskDetail, error) {
	task, err := await(ctx, s.store.GetTask(id))
	if err != nil {
		return models.TaskDetail{}, err
	}
	return s.detail(ctx, task)
}

// CreateTask parses input and adds the task
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (models.TaskDetail, error) {
	draft, err := ParseTaskInput(input)
	if err != nil {
		return models.TaskDetail{}, err
	}

	task, err := await(ctx, s.store.CreateTask(draft))
	if err != nil {
		return models.TaskDetail{}, err
	}
	return s.detail(ctx, task)
}

// UpdateTask parses input and replaces every editable field of the task
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, input TaskInput) (models.TaskDetail, error) {
	draft, err := ParseTaskInput(input)
	if err != nil {
		return models.TaskDetail{}, err
	}

	edit := s.store.EditTask(id, draft)
	get := s.store.GetTask(id)

	if _, err := await(ctx, edit); err != nil {
		return models.TaskDetail{}, err
	}
	task, err := await(ctx, get)
	if err != nil {
		return models.TaskDetail{}, err
	}
	return s.detail(ctx, task)
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	_, err := await(ctx, s.store.DeleteTask(id))
	return err
}

// Defaults returns the starting values for a new task: today through today
// plus the configured span, not started yet.
func (s *TaskService) Defaults() TaskDefaults {
	start := utils.StartOfDay(s.now())
	return TaskDefaults{
		StartDate: start,
		EndDate:   utils.AddDays(start, s.settings.Load().DaysBetweenDates),
		Status:    models.TaskStatusNotStarted,
	}
}

// detail resolves the project and employee of a task. The lookups are issued
// together so they cost a single store delay.
func (s *TaskService) detail(ctx context.Context, task models.Task) (models.TaskDetail, error) {
	projectFuture := s.store.GetProject(task.ProjectID)
	var employeeFuture *store.Future[models.Employee]
	if task.EmployeeID != nil {
		employeeFuture = s.store.GetEmployee(*task.EmployeeID)
	}

	detail := models.TaskDetail{Task: task}

	project, err := await(ctx, projectFuture)
	if err != nil {
		return models.TaskDetail{}, err
	}
	detail.Project = project

	if employeeFuture != nil {
		employee, err := await(ctx, employeeFuture)
		switch {
		case err == nil:
			detail.Employee = &employee
		case errors.Is(err, apierrors.ErrNotFound):
			// Deleted after the task was read; the task is unassigned now
			detail.Task.EmployeeID = nil
		default:
			return models.TaskDetail{}, err
		}
	}
	return detail, nil
}
