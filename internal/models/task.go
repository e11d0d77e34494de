package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "NOT_STARTED"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusPostponed  TaskStatus = "POSTPONED"
)

// TaskStatuses lists every status in display order
var TaskStatuses = []TaskStatus{
	TaskStatusNotStarted,
	TaskStatusInProgress,
	TaskStatusDone,
	TaskStatusPostponed,
}

var ErrUnknownTaskStatus = errors.New("unknown task status")

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusNotStarted: "Not started",
	TaskStatusInProgress: "In progress",
	TaskStatusDone:       "Done",
	TaskStatusPostponed:  "Postponed",
}

// Label returns the human-readable status name
func (s TaskStatus) Label() string {
	return taskStatusLabels[s]
}

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// ParseTaskStatus accepts either a status code ("IN_PROGRESS") or its label
// ("In progress"), case-insensitively.
func ParseTaskStatus(value string) (TaskStatus, error) {
	value = strings.TrimSpace(value)
	for _, s := range TaskStatuses {
		if strings.EqualFold(value, string(s)) || strings.EqualFold(value, s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTaskStatus, value)
}

type Task struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	ProjectID      uuid.UUID  `json:"project_id"`
	TimeToComplete int        `json:"time_to_complete"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Status         TaskStatus `json:"status"`
	EmployeeID     *uuid.UUID `json:"employee_id"`
}

// HasEmployee reports whether the task is assigned to employeeID
func (t Task) HasEmployee(employeeID uuid.UUID) bool {
	return t.EmployeeID != nil && *t.EmployeeID == employeeID
}

// TaskDraft holds every mutable task field
type TaskDraft struct {
	Name           string     `json:"name"`
	ProjectID      uuid.UUID  `json:"project_id"`
	TimeToComplete int        `json:"time_to_complete"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Status         TaskStatus `json:"status"`
	EmployeeID     *uuid.UUID `json:"employee_id"`
}

// Normalize trims the name and drops a nil-uuid employee reference
func (d TaskDraft) Normalize() TaskDraft {
	d.Name = strings.TrimSpace(d.Name)
	if d.EmployeeID != nil && *d.EmployeeID == uuid.Nil {
		d.EmployeeID = nil
	}
	return d
}

// Validate checks field constraints. Reference checks against live projects
// and employees are the store's job.
func (d TaskDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("name is required")),
		validation.Field(&d.ProjectID, validation.By(requireUUID("project is required"))),
		validation.Field(&d.TimeToComplete,
			validation.Required.Error("time to complete is required"),
			validation.Min(1).Error("time to complete must be positive"),
		),
		validation.Field(&d.StartDate, validation.Required.Error("start date is required")),
		validation.Field(&d.EndDate,
			validation.Required.Error("end date is required"),
			validation.Min(d.StartDate).Error("end date must not be before start date"),
		),
		validation.Field(&d.Status,
			validation.Required.Error("status is required"),
			validation.In(TaskStatusNotStarted, TaskStatusInProgress, TaskStatusDone, TaskStatusPostponed).
				Error("unknown status"),
		),
	)
}

// Apply returns the task with the draft's fields, keeping the id
func (d TaskDraft) Apply(t Task) Task {
	t.Name = d.Name
	t.ProjectID = d.ProjectID
	t.TimeToComplete = d.TimeToComplete
	t.StartDate = d.StartDate
	t.EndDate = d.EndDate
	t.Status = d.Status
	t.EmployeeID = cloneUUID(d.EmployeeID)
	return t
}

// Clone returns a copy that shares no pointers with t
func (t Task) Clone() Task {
	t.EmployeeID = cloneUUID(t.EmployeeID)
	return t
}

// TaskDetail is a task joined with its project and optional employee
type TaskDetail struct {
	Task     Task
	Project  Project
	Employee *Employee
}

func requireUUID(message string) validation.RuleFunc {
	return func(value interface{}) error {
		id, ok := value.(uuid.UUID)
		if !ok || id == uuid.Nil {
			return errors.New(message)
		}
		return nil
	}
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
