package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
)

// AddIndexes makes sure the lookup indexes on task references exist. Tables
// created before the indexes were declared do not get them from AutoMigrate
// alone on every driver.
func AddIndexes(db *gorm.DB) error {
	indexes := []string{
		"idx_task_records_project_id",
		"idx_task_records_employee_id",
	}

	migrator := db.Migrator()
	for _, name := range indexes {
		if migrator.HasIndex(&models.TaskRecord{}, name) {
			continue
		}

		if err := migrator.CreateIndex(&models.TaskRecord{}, name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}

		slog.Info("created index", "name", name)
	}

	return nil
}

// MigrateDatabase runs all database migrations
func MigrateDatabase(db *gorm.DB) error {
	slog.Info("running database migrations")

	if err := AutoMigrate(db); err != nil {
		return err
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}
