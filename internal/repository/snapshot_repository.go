package repository

import (
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/store"
	"gorm.io/gorm"
)

// GormSnapshotRepository is a GORM implementation of SnapshotRepository
type GormSnapshotRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &GormSnapshotRepository{db: db, now: time.Now}
}

// Load reads every record back in saved order
func (r *GormSnapshotRepository) Load() (store.Snapshot, error) {
	var (
		projectRecords  []models.ProjectRecord
		employeeRecords []models.EmployeeRecord
		taskRecords     []models.TaskRecord
		snap            store.Snapshot
	)

	if err := r.db.Scopes(database.InInsertionOrder()).Find(&projectRecords).Error; err != nil {
		return snap, err
	}
	if err := r.db.Scopes(database.InInsertionOrder()).Find(&employeeRecords).Error; err != nil {
		return snap, err
	}
	if err := r.db.Scopes(database.InInsertionOrder()).Find(&taskRecords).Error; err != nil {
		return snap, err
	}

	snap.Projects = make([]models.Project, 0, len(projectRecords))
	for _, rec := range projectRecords {
		p, err := rec.ToProject()
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("project record %s: %w", rec.ID, err)
		}
		snap.Projects = append(snap.Projects, p)
	}

	snap.Employees = make([]models.Employee, 0, len(employeeRecords))
	for _, rec := range employeeRecords {
		e, err := rec.ToEmployee()
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("employee record %s: %w", rec.ID, err)
		}
		snap.Employees = append(snap.Employees, e)
	}

	snap.Tasks = make([]models.Task, 0, len(taskRecords))
	for _, rec := range taskRecords {
		t, err := rec.ToTask()
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("task record %s: %w", rec.ID, err)
		}
		snap.Tasks = append(snap.Tasks, t)
	}

	return snap, nil
}

// Save replaces all records within a single transaction
func (r *GormSnapshotRepository) Save(snap store.Snapshot) error {
	savedAt := r.now().UTC()

	return r.db.Transaction(func(tx *gorm.DB) error {
		// Tasks first so their rows never outlive the rows they point at
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.TaskRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.EmployeeRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ProjectRecord{}).Error; err != nil {
			return err
		}

		if len(snap.Projects) > 0 {
			records := make([]models.ProjectRecord, len(snap.Projects))
			for i, p := range snap.Projects {
				records[i] = models.ToProjectRecord(p, i, savedAt)
			}
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		if len(snap.Employees) > 0 {
			records := make([]models.EmployeeRecord, len(snap.Employees))
			for i, e := range snap.Employees {
				records[i] = models.ToEmployeeRecord(e, i, savedAt)
			}
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		if len(snap.Tasks) > 0 {
			records := make([]models.TaskRecord, len(snap.Tasks))
			for i, t := range snap.Tasks {
				records[i] = models.ToTaskRecord(t, i, savedAt)
			}
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
