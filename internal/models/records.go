package models

import (
	"time"

	"github.com/google/uuid"
)

// The *Record types are the persisted form of a store snapshot. Position
// keeps the store's insertion order across a save/load cycle.

type ProjectRecord struct {
	ID          string    `gorm:"type:varchar(36);primarykey"`
	Position    int       `gorm:"not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	SavedAt     time.Time `gorm:"not null"`
}

type EmployeeRecord struct {
	ID         string    `gorm:"type:varchar(36);primarykey"`
	Position   int       `gorm:"not null"`
	SurName    string    `gorm:"type:varchar(255);not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	MiddleName string    `gorm:"type:varchar(255);not null"`
	JobTitle   string    `gorm:"type:varchar(255);not null"`
	SavedAt    time.Time `gorm:"not null"`
}

type TaskRecord struct {
	ID             string     `gorm:"type:varchar(36);primarykey"`
	Position       int        `gorm:"not null"`
	Name           string     `gorm:"type:varchar(255);not null"`
	ProjectID      string     `gorm:"type:varchar(36);not null;index:idx_task_records_project_id"`
	TimeToComplete int        `gorm:"not null"`
	StartDate      time.Time  `gorm:"not null"`
	EndDate        time.Time  `gorm:"not null"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:'NOT_STARTED'"`
	EmployeeID     *string    `gorm:"type:varchar(36);index:idx_task_records_employee_id"`
	SavedAt        time.Time  `gorm:"not null"`
}

// ToProjectRecord converts a Project to its persisted form
func ToProjectRecord(p Project, position int, savedAt time.Time) ProjectRecord {
	return ProjectRecord{
		ID:          p.ID.String(),
		Position:    position,
		Name:        p.Name,
		Description: p.Description,
		SavedAt:     savedAt,
	}
}

// ToProject converts a persisted record back to a Project
func (r ProjectRecord) ToProject() (Project, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Project{}, err
	}
	return Project{ID: id, Name: r.Name, Description: r.Description}, nil
}

// ToEmployeeRecord converts an Employee to its persisted form
func ToEmployeeRecord(e Employee, position int, savedAt time.Time) EmployeeRecord {
	return EmployeeRecord{
		ID:         e.ID.String(),
		Position:   position,
		SurName:    e.SurName,
		Name:       e.Name,
		MiddleName: e.MiddleName,
		JobTitle:   e.Position,
		SavedAt:    savedAt,
	}
}

// ToEmployee converts a persisted record back to an Employee
func (r EmployeeRecord) ToEmployee() (Employee, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		ID:         id,
		SurName:    r.SurName,
		Name:       r.Name,
		MiddleName: r.MiddleName,
		Position:   r.JobTitle,
	}, nil
}

// ToTaskRecord converts a Task to its persisted form
func ToTaskRecord(t Task, position int, savedAt time.Time) TaskRecord {
	rec := TaskRecord{
		ID:             t.ID.String(),
		Position:       position,
		Name:           t.Name,
		ProjectID:      t.ProjectID.String(),
		TimeToComplete: t.TimeToComplete,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		Status:         t.Status,
		SavedAt:        savedAt,
	}
	if t.EmployeeID != nil {
		employeeID := t.EmployeeID.String()
		rec.EmployeeID = &employeeID
	}
	return rec
}

// ToTask converts a persisted record back to a Task
func (r TaskRecord) ToTask() (Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Task{}, err
	}
	projectID, err := uuid.Parse(r.ProjectID)
	if err != nil {
		return Task{}, err
	}
	task := Task{
		ID:             id,
		Name:           r.Name,
		ProjectID:      projectID,
		TimeToComplete: r.TimeToComplete,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Status:         r.Status,
	}
	if r.EmployeeID != nil {
		employeeID, err := uuid.Parse(*r.EmployeeID)
		if err != nil {
			return Task{}, err
		}
		task.EmployeeID = &employeeID
	}
	return task, nil
}
