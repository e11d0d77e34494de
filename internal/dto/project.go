package dto

import (
	"github.com/yukikurage/project-tracker/internal/models"
)

// ProjectRequest is the body of project create and update requests
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectListResponse represents a list of projects
type ProjectListResponse struct {
	Projects []ProjectDTO `json:"projects"`
	Count    int          `json:"count"`
	Limit    int          `json:"limit"`
}

func (r ProjectRequest) ToDraft() models.ProjectDraft {
	return models.ProjectDraft{Name: r.Name, Description: r.Description}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(p models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
	}
}

func ToProjectListResponse(projects []models.Project, limit int) ProjectListResponse {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ToProjectDTO(p)
	}
	return ProjectListResponse{Projects: out, Count: len(out), Limit: limit}
}
