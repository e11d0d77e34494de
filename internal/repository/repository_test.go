package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/store"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleSnapshot() store.Snapshot {
	alpha := models.Project{ID: uuid.New(), Name: "Alpha", Description: "first"}
	beta := models.Project{ID: uuid.New(), Name: "Beta", Description: "second"}
	bob := models.Employee{ID: uuid.New(), SurName: "Smith", Name: "Bob", MiddleName: "J", Position: "Dev"}

	return store.Snapshot{
		Projects:  []models.Project{beta, alpha},
		Employees: []models.Employee{bob},
		Tasks: []models.Task{
			{
				ID:             uuid.New(),
				Name:           "Design",
				ProjectID:      alpha.ID,
				TimeToComplete: 8,
				StartDate:      day("2024-01-01"),
				EndDate:        day("2024-01-05"),
				Status:         models.TaskStatusInProgress,
				EmployeeID:     &bob.ID,
			},
			{
				ID:             uuid.New(),
				Name:           "Build",
				ProjectID:      beta.ID,
				TimeToComplete: 3,
				StartDate:      day("2024-02-01"),
				EndDate:        day("2024-02-01"),
				Status:         models.TaskStatusNotStarted,
			},
		},
	}
}

func TestSnapshotRepository_EmptyDatabase(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Employees)
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	want := sampleSnapshot()

	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, want.Projects, got.Projects)
	assert.Equal(t, want.Employees, got.Employees)
	require.Len(t, got.Tasks, 2)
	for i := range want.Tasks {
		assert.Equal(t, want.Tasks[i].ID, got.Tasks[i].ID)
		assert.Equal(t, want.Tasks[i].Name, got.Tasks[i].Name)
		assert.Equal(t, want.Tasks[i].ProjectID, got.Tasks[i].ProjectID)
		assert.Equal(t, want.Tasks[i].Status, got.Tasks[i].Status)
		assert.Equal(t, want.Tasks[i].EmployeeID, got.Tasks[i].EmployeeID)
		assert.True(t, want.Tasks[i].StartDate.Equal(got.Tasks[i].StartDate))
		assert.True(t, want.Tasks[i].EndDate.Equal(got.Tasks[i].EndDate))
	}
	assert.NoError(t, got.Validate())
}

func TestSnapshotRepository_SaveReplaces(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	require.NoError(t, repo.Save(sampleSnapshot()))

	only := models.Project{ID: uuid.New(), Name: "Only"}
	require.NoError(t, repo.Save(store.Snapshot{Projects: []models.Project{only}}))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, []models.Project{only}, got.Projects)
	assert.Empty(t, got.Tasks)
	assert.Empty(t, got.Employees)
}

func TestSnapshotRepository_SaveFailsWhenTransactionCannotStart(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	err = NewSnapshotRepository(db).Save(sampleSnapshot())
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_LoadPropagatesQueryErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "project_records" ORDER BY position ASC`).
		WillReturnError(errors.New("relation does not exist"))

	_, err = NewSnapshotRepository(db).Load()
	assert.EqualError(t, err, "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_LoadRejectsCorruptIDs(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.ProjectRecord{ID: "not-a-uuid", Name: "Broken", SavedAt: time.Now()}).Error)

	_, err := NewSnapshotRepository(db).Load()
	assert.ErrorContains(t, err, "project record not-a-uuid")
}

func TestSettingsRepository(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	_, err := repo.Load()
	assert.ErrorIs(t, err, ErrSettingsNotFound)

	first := models.Settings{URL: "http://localhost:8080", MaxEntries: 20, DaysBetweenDates: 7}
	require.NoError(t, repo.Save(first))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := models.Settings{URL: "https://tracker.example.com", MaxEntries: 50, DaysBetweenDates: 0}
	require.NoError(t, repo.Save(second))

	got, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
