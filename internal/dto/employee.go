package dto

import (
	"github.com/yukikurage/project-tracker/internal/models"
)

// EmployeeRequest is the body of employee create and update requests
type EmployeeRequest struct {
	SurName    string `json:"sur_name"`
	Name       string `json:"name"`
	MiddleName string `json:"middle_name"`
	Position   string `json:"position"`
}

// EmployeeDTO represents an employee in API responses
type EmployeeDTO struct {
	ID         string `json:"id"`
	SurName    string `json:"sur_name"`
	Name       string `json:"name"`
	MiddleName string `json:"middle_name"`
	Position   string `json:"position"`
	FullName   string `json:"full_name"`
}

// EmployeeListResponse represents a list of employees
type EmployeeListResponse struct {
	Employees []EmployeeDTO `json:"employees"`
	Count     int           `json:"count"`
	Limit     int           `json:"limit"`
}

func (r EmployeeRequest) ToDraft() models.EmployeeDraft {
	return models.EmployeeDraft{
		SurName:    r.SurName,
		Name:       r.Name,
		MiddleName: r.MiddleName,
		Position:   r.Position,
	}
}

// ToEmployeeDTO converts an Employee model to EmployeeDTO
func ToEmployeeDTO(e models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID.String(),
		SurName:    e.SurName,
		Name:       e.Name,
		MiddleName: e.MiddleName,
		Position:   e.Position,
		FullName:   e.FullName(),
	}
}

func ToEmployeeListResponse(employees []models.Employee, limit int) EmployeeListResponse {
	out := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		out[i] = ToEmployeeDTO(e)
	}
	return EmployeeListResponse{Employees: out, Count: len(out), Limit: limit}
}
