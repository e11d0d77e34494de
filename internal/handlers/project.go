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

type ProjectHandler struct {
	projects *services.ProjectService
	settings services.SettingsProvider
}

func NewProjectHandler(projects *services.ProjectService, settings services.SettingsProvider) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		settings: settings,
	}
}

// ListProjects returns projects in insertion order
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	limit := utils.GetLimit(c, h.settings.Load().MaxEntries)

	projects, err := h.projects.ListProjects(c.Request.Context(), limit)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, limit))
}

// GetProject returns a specific project by ID
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), req.ToDraft())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(project))
}

// UpdateProject replaces the name and description of a project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.UpdateProject(c.Request.Context(), id, req.ToDraft())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// DeleteProject deletes a project and every task in it
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	if err := h.projects.DeleteProject(c.Request.Context(), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// ListProjectTasks returns the tasks that belong to a project
func (h *ProjectHandler) ListProjectTasks(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)
	limit := utils.GetLimit(c, h.settings.Load().MaxEntries)

	tasks, err := h.projects.ListProjectTasks(c.Request.Context(), id, limit)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, limit))
}
