package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/dto"
	"github.com/yukikurage/project-tracker/internal/repository"
	"github.com/yukikurage/project-tracker/internal/settings"
	"github.com/yukikurage/project-tracker/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// HandlersTestSuite drives the full router against a zero-delay store
type HandlersTestSuite struct {
	suite.Suite
	db     *gorm.DB
	store  *store.Store
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *HandlersTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database for settings
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.AutoMigrate(suite.db))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	settingsService, err := settings.NewService(repository.NewSettingsRepository(suite.db), "", discard)
	suite.Require().NoError(err)

	suite.store = store.New(store.WithDelay(0))

	gin.SetMode(gin.TestMode)
	suite.router = NewRouter(suite.store, settingsService, discard)
}

// TearDownTest runs after each test
func (suite *HandlersTestSuite) TearDownTest() {
	suite.store.Close()
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *HandlersTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *HandlersTestSuite) createProject(name string) dto.ProjectDTO {
	w := suite.request(http.MethodPost, "/api/projects", dto.ProjectRequest{Name: name, Description: name + " description"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var project dto.ProjectDTO
	suite.decode(w, &project)
	return project
}

func (suite *HandlersTestSuite) createEmployee(surName string) dto.EmployeeDTO {
	w := suite.request(http.MethodPost, "/api/employees", dto.EmployeeRequest{
		SurName:    surName,
		Name:       "Anna",
		MiddleName: "K",
		Position:   "Engineer",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var employee dto.EmployeeDTO
	suite.decode(w, &employee)
	return employee
}

func (suite *HandlersTestSuite) createTask(projectID string, employeeID *string) dto.TaskDTO {
	w := suite.request(http.MethodPost, "/api/tasks", dto.TaskRequest{
		Name:           "Task",
		ProjectID:      projectID,
		TimeToComplete: 5,
		StartDate:      "2024-04-01",
		EndDate:        "2024-04-03",
		Status:         "IN_PROGRESS",
		EmployeeID:     employeeID,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var task dto.TaskDTO
	suite.decode(w, &task)
	return task
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestProjectCRUD() {
	project := suite.createProject("Apollo")
	suite.NotEmpty(project.ID)
	suite.Equal("Apollo", project.Name)

	w := suite.request(http.MethodGet, "/api/projects/"+project.ID, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodPut, "/api/projects/"+project.ID, dto.ProjectRequest{Name: "Artemis", Description: "Return to the moon"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var updated dto.ProjectDTO
	suite.decode(w, &updated)
	suite.Equal("Artemis", updated.Name)
	suite.Equal("Return to the moon", updated.Description)

	// An empty description is rejected and leaves the project as it was
	w = suite.request(http.MethodPut, "/api/projects/"+project.ID, dto.ProjectRequest{Name: "Artemis", Description: ""})
	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal("INVALID_INPUT", body["code"])
	suite.Contains(body["details"], "description")

	w = suite.request(http.MethodGet, "/api/projects/"+project.ID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var fetched dto.ProjectDTO
	suite.decode(w, &fetched)
	suite.Equal(updated, fetched)

	w = suite.request(http.MethodDelete, "/api/projects/"+project.ID, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/projects/"+project.ID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "NOT_FOUND")
}

func (suite *HandlersTestSuite) TestCreateProject_Validation() {
	w := suite.request(http.MethodPost, "/api/projects", dto.ProjectRequest{Name: "   "})
	suite.Equal(http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal("INVALID_INPUT", body["code"])
	suite.Contains(body["details"], "name")
}

func (suite *HandlersTestSuite) TestCreateProject_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestInvalidID() {
	for _, path := range []string{"/api/projects/1", "/api/tasks/abc", "/api/employees/xyz"} {
		w := suite.request(http.MethodGet, path, nil)
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlersTestSuite) TestListProjects_Limit() {
	for i := 0; i < 3; i++ {
		suite.createProject(fmt.Sprintf("P%d", i))
	}

	w := suite.request(http.MethodGet, "/api/projects?limit=2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ProjectListResponse
	suite.decode(w, &list)
	suite.Equal(2, list.Count)
	suite.Equal("P0", list.Projects[0].Name)
	suite.Equal("P1", list.Projects[1].Name)

	// Default comes from the settings
	w = suite.request(http.MethodGet, "/api/projects", nil)
	suite.decode(w, &list)
	suite.Equal(3, list.Count)
	suite.Equal(20, list.Limit)
}

func (suite *HandlersTestSuite) TestTaskLifecycle() {
	project := suite.createProject("Apollo")
	employee := suite.createEmployee("Ivanova")
	suite.Equal("Ivanova Anna K", employee.FullName)

	task := suite.createTask(project.ID, &employee.ID)
	suite.Equal("Apollo", task.ProjectName)
	suite.Equal("In progress", task.StatusLabel)
	suite.Equal("2024-04-01", task.StartDate)
	suite.Equal("Ivanova Anna K", task.EmployeeFullName)

	w := suite.request(http.MethodGet, "/api/projects/"+project.ID+"/tasks", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.TaskListResponse
	suite.decode(w, &list)
	suite.Require().Len(list.Tasks, 1)
	suite.Equal(task.ID, list.Tasks[0].ID)

	// Deleting the employee unassigns the task
	w = suite.request(http.MethodDelete, "/api/employees/"+employee.ID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/tasks/"+task.ID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var fetched dto.TaskDTO
	suite.decode(w, &fetched)
	suite.Nil(fetched.EmployeeID)
	suite.Empty(fetched.EmployeeFullName)

	w = suite.request(http.MethodPut, "/api/tasks/"+task.ID, dto.TaskRequest{
		Name:           "Renamed",
		ProjectID:      project.ID,
		TimeToComplete: 1,
		StartDate:      "2024-04-01",
		EndDate:        "2024-04-01",
		Status:         "Done",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &fetched)
	suite.Equal("Renamed", fetched.Name)
	suite.Equal("DONE", string(fetched.Status))

	// Deleting the project removes its tasks
	w = suite.request(http.MethodDelete, "/api/projects/"+project.ID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/tasks/"+task.ID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreateTask_Errors() {
	project := suite.createProject("Apollo")

	w := suite.request(http.MethodPost, "/api/tasks", dto.TaskRequest{
		Name:           "Bad",
		ProjectID:      project.ID,
		TimeToComplete: 1,
		StartDate:      "2024-04-05",
		EndDate:        "2024-04-01",
		Status:         "NOT_STARTED",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPost, "/api/tasks", dto.TaskRequest{
		Name:           "Bad",
		ProjectID:      project.ID,
		TimeToComplete: 1,
		StartDate:      "2024-04-01",
		EndDate:        "2024-04-01",
		Status:         "sleeping",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPost, "/api/tasks", dto.TaskRequest{
		Name:           "Orphan",
		ProjectID:      uuid.NewString(),
		TimeToComplete: 1,
		StartDate:      "2024-04-01",
		EndDate:        "2024-04-01",
		Status:         "NOT_STARTED",
	})
	suite.Equal(http.StatusNotFound, w.Code)

	missing := uuid.NewString()
	w = suite.request(http.MethodPost, "/api/tasks", dto.TaskRequest{
		Name:           "Ghost",
		ProjectID:      project.ID,
		TimeToComplete: 1,
		StartDate:      "2024-04-01",
		EndDate:        "2024-04-01",
		Status:         "NOT_STARTED",
		EmployeeID:     &missing,
	})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/api/tasks", nil)
	var list dto.TaskListResponse
	suite.decode(w, &list)
	suite.Empty(list.Tasks)
}

func (suite *HandlersTestSuite) TestTaskDefaults() {
	w := suite.request(http.MethodGet, "/api/tasks/defaults", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var defaults dto.TaskDefaultsDTO
	suite.decode(w, &defaults)
	suite.Equal("NOT_STARTED", string(defaults.Status))
	suite.Len(defaults.StartDate, 10)
	suite.Len(defaults.EndDate, 10)
	suite.NotEqual(defaults.StartDate, defaults.EndDate)
}

func (suite *HandlersTestSuite) TestSettings() {
	w := suite.request(http.MethodGet, "/api/settings", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var current dto.SettingsDTO
	suite.decode(w, &current)
	suite.Equal(20, current.MaxEntries)

	w = suite.request(http.MethodPut, "/api/settings", dto.SettingsDTO{URL: "https://example.com", MaxEntries: 1, DaysBetweenDates: 2})
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.createProject("A")
	suite.createProject("B")
	w = suite.request(http.MethodGet, "/api/projects", nil)
	var list dto.ProjectListResponse
	suite.decode(w, &list)
	suite.Equal(1, list.Count)

	w = suite.request(http.MethodPut, "/api/settings", dto.SettingsDTO{URL: "nowhere at all", MaxEntries: 0})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestStoreClosed() {
	suite.store.Close()

	w := suite.request(http.MethodGet, "/api/projects", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
