package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Project groups tasks. Deleting a project deletes its tasks.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ProjectDraft holds every mutable project field. It is used both to create
// a project and as the full replacement when editing one.
type ProjectDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Normalize trims surrounding whitespace from all fields
func (d ProjectDraft) Normalize() ProjectDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	return d
}

// Validate checks field constraints
func (d ProjectDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("name is required")),
		validation.Field(&d.Description, validation.Required.Error("description is required")),
	)
}

// Apply returns the project with the draft's fields, keeping the id
func (d ProjectDraft) Apply(p Project) Project {
	p.Name = d.Name
	p.Description = d.Description
	return p
}
