package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/dto"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/middleware"
	"github.com/yukikurage/project-tracker/internal/services"
	"github.com/yukikurage/project-tracker/internal/utils"
)

type EmployeeHandler struct {
	employees *services.EmployeeService
	settings  services.SettingsProvider
}

func NewEmployeeHandler(employees *services.EmployeeService, settings services.SettingsProvider) *EmployeeHandler {
	return &EmployeeHandler{
		employees: employees,
		settings:  settings,
	}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	limit := utils.GetLimit(c, h.settings.Load().MaxEntries)

	employees, err := h.employees.ListEmployees(c.Request.Context(), limit)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees, limit))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	employee, err := h.employees.GetEmployee(c.Request.Context(), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(employee))
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employees.CreateEmployee(c.Request.Context(), req.ToDraft())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeDTO(employee))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employees.UpdateEmployee(c.Request.Context(), id, req.ToDraft())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(employee))
}

// DeleteEmployee deletes an employee; their tasks stay but become unassigned
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	if err := h.employees.DeleteEmployee(c.Request.Context(), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
