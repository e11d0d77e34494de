package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/middleware"
	"github.com/yukikurage/project-tracker/internal/services"
	"github.com/yukikurage/project-tracker/internal/store"
)

// NewRouter wires every handler onto a gin engine
func NewRouter(s *store.Store, settings SettingsStore, logger *slog.Logger) *gin.Engine {
	projectHandler := NewProjectHandler(services.NewProjectService(s), settings)
	employeeHandler := NewEmployeeHandler(services.NewEmployeeService(s), settings)
	taskHandler := NewTaskHandler(services.NewTaskService(s, settings), settings)
	settingsHandler := NewSettingsHandler(settings)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project Tracker API is running",
		})
	})

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", middleware.RequireEntityID(), projectHandler.GetProject)
			projects.PUT("/:id", middleware.RequireEntityID(), projectHandler.UpdateProject)
			projects.DELETE("/:id", middleware.RequireEntityID(), projectHandler.DeleteProject)
			projects.GET("/:id/tasks", middleware.RequireEntityID(), projectHandler.ListProjectTasks)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/defaults", taskHandler.GetTaskDefaults)
			tasks.GET("/:id", middleware.RequireEntityID(), taskHandler.GetTask)
			tasks.PUT("/:id", middleware.RequireEntityID(), taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireEntityID(), taskHandler.DeleteTask)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", middleware.RequireEntityID(), employeeHandler.GetEmployee)
			employees.PUT("/:id", middleware.RequireEntityID(), employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", middleware.RequireEntityID(), employeeHandler.DeleteEmployee)
		}

		api.GET("/settings", settingsHandler.GetSettings)
		api.PUT("/settings", settingsHandler.UpdateSettings)
	}

	return r
}
