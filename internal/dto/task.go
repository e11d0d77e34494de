package dto

import (
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/services"
	"github.com/yukikurage/project-tracker/internal/utils"
)

// TaskRequest is the body of task create and update requests. Dates are
// YYYY-MM-DD; status may be a code or its label.
type TaskRequest struct {
	Name           string  `json:"name"`
	ProjectID      string  `json:"project_id"`
	TimeToComplete int     `json:"time_to_complete"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Status         string  `json:"status"`
	EmployeeID     *string `json:"employee_id"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ProjectID        string            `json:"project_id"`
	ProjectName      string            `json:"project_name"`
	TimeToComplete   int               `json:"time_to_complete"`
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	Status           models.TaskStatus `json:"status"`
	StatusLabel      string            `json:"status_label"`
	EmployeeID       *string           `json:"employee_id"`
	EmployeeFullName string            `json:"employee_full_name,omitempty"`
}

// TaskListResponse represents a list of tasks
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
	Count int       `json:"count"`
	Limit int       `json:"limit"`
}

// TaskDefaultsDTO holds the values a new task starts from
type TaskDefaultsDTO struct {
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Status      models.TaskStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
}

// ToTaskInput converts a request body to service input
func (r TaskRequest) ToTaskInput() services.TaskInput {
	return services.TaskInput{
		Name:           r.Name,
		ProjectID:      r.ProjectID,
		TimeToComplete: r.TimeToComplete,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Status:         r.Status,
		EmployeeID:     r.EmployeeID,
	}
}

// ToTaskDTO converts a resolved task to TaskDTO
func ToTaskDTO(detail models.TaskDetail) TaskDTO {
	task := detail.Task
	dto := TaskDTO{
		ID:             task.ID.String(),
		Name:           task.Name,
		ProjectID:      task.ProjectID.String(),
		ProjectName:    detail.Project.Name,
		TimeToComplete: task.TimeToComplete,
		StartDate:      utils.FormatDate(task.StartDate),
		EndDate:        utils.FormatDate(task.EndDate),
		Status:         task.Status,
		StatusLabel:    task.Status.Label(),
	}
	if task.EmployeeID != nil {
		id := task.EmployeeID.String()
		dto.EmployeeID = &id
	}
	if detail.Employee != nil {
		dto.EmployeeFullName = detail.Employee.FullName()
	}
	return dto
}

// ToTaskListResponse converts resolved tasks to a list response
func ToTaskListResponse(details []models.TaskDetail, limit int) TaskListResponse {
	tasks := make([]TaskDTO, len(details))
	for i, d := range details {
		tasks[i] = ToTaskDTO(d)
	}
	return TaskListResponse{Tasks: tasks, Count: len(tasks), Limit: limit}
}

// ToTaskDefaultsDTO converts task defaults to their API form
func ToTaskDefaultsDTO(d services.TaskDefaults) TaskDefaultsDTO {
	return TaskDefaultsDTO{
		StartDate:   utils.FormatDate(d.StartDate),
		EndDate:     utils.FormatDate(d.EndDate),
		Status:      d.Status,
		StatusLabel: d.Status.Label(),
	}
}
