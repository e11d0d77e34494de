package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `json:"id"`
	SurName    string    `json:"sur_name"`
	Name       string    `json:"name"`
	MiddleName string    `json:"middle_name"`
	Position   string    `json:"position"`
}

// FullName is the display name used wherever an employee is shown next to a task
func (e Employee) FullName() string {
	return e.SurName + " " + e.Name + " " + e.MiddleName
}

// EmployeeDraft holds every mutable employee field
type EmployeeDraft struct {
	SurName    string `json:"sur_name"`
	Name       string `json:"name"`
	MiddleName string `json:"middle_name"`
	Position   string `json:"position"`
}

// Normalize trims surrounding whitespace from all fields
func (d EmployeeDraft) Normalize() EmployeeDraft {
	d.SurName = strings.TrimSpace(d.SurName)
	d.Name = strings.TrimSpace(d.Name)
	d.MiddleName = strings.TrimSpace(d.MiddleName)
	d.Position = strings.TrimSpace(d.Position)
	return d
}

// Validate checks field constraints
func (d EmployeeDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.SurName, validation.Required.Error("surname is required")),
		validation.Field(&d.Name, validation.Required.Error("name is required")),
		validation.Field(&d.MiddleName, validation.Required.Error("middle name is required")),
		validation.Field(&d.Position, validation.Required.Error("position is required")),
	)
}

// Apply returns the employee with the draft's fields, keeping the id
func (d EmployeeDraft) Apply(e Employee) Employee {
	e.SurName = d.SurName
	e.Name = d.Name
	e.MiddleName = d.MiddleName
	e.Position = d.Position
	return e
}
