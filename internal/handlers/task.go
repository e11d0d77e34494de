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

type TaskHandler struct {
	tasks    *services.TaskService
	settings services.SettingsProvider
}

func NewTaskHandler(tasks *services.TaskService, settings services.SettingsProvider) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		settings: settings,
	}
}

// ListTasks returns every task with its project and employee names
func (h *TaskHandler) ListTasks(c *gin.Context) {
	limit := utils.GetLimit(c, h.settings.Load().MaxEntries)

	tasks, err := h.tasks.ListTasks(c.Request.Context(), limit)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, limit))
}

// GetTaskDefaults returns the values a new task form starts from
func (h *TaskHandler) GetTaskDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTaskDefaultsDTO(h.tasks.Defaults()))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	task, err := h.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req.ToTaskInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(task))
}

// UpdateTask replaces every editable field of a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), id, req.ToTaskInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, _ := middleware.GetEntityID(c)

	if err := h.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
