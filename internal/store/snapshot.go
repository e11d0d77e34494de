package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/project-tracker/internal/models"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is a point-in-time copy of every collection, in insertion order
type Snapshot struct {
	Projects  []models.Project
	Tasks     []models.Task
	Employees []models.Employee
}

// Snapshot copies the current state. It does not go through the request
// queue, so it reflects every request that has completed so far.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Projects:  truncate(s.projects, 0, identity[models.Project]),
		Tasks:     truncate(s.tasks, 0, models.Task.Clone),
		Employees: truncate(s.employees, 0, identity[models.Employee]),
	}
}

// Restore replaces the whole state with snap. The snapshot must have unique
// ids per collection and every task reference must resolve; otherwise the
// current state is left untouched.
func (s *Store) Restore(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = truncate(snap.Projects, 0, identity[models.Project])
	s.tasks = truncate(snap.Tasks, 0, models.Task.Clone)
	s.employees = truncate(snap.Employees, 0, identity[models.Employee])

	s.logger.Info("store restored",
		"projects", len(s.projects),
		"tasks", len(s.tasks),
		"employees", len(s.employees),
	)
	return nil
}

// Validate checks id uniqueness and task references
func (snap Snapshot) Validate() error {
	projects := make(map[uuid.UUID]struct{}, len(snap.Projects))
	for _, p := range snap.Projects {
		if _, dup := projects[p.ID]; dup || p.ID == uuid.Nil {
			return fmt.Errorf("%w: duplicate or empty project id %s", ErrInvalidSnapshot, p.ID)
		}
		projects[p.ID] = struct{}{}
	}

	employees := make(map[uuid.UUID]struct{}, len(snap.Employees))
	for _, e := range snap.Employees {
		if _, dup := employees[e.ID]; dup || e.ID == uuid.Nil {
			return fmt.Errorf("%w: duplicate or empty employee id %s", ErrInvalidSnapshot, e.ID)
		}
		employees[e.ID] = struct{}{}
	}

	tasks := make(map[uuid.UUID]struct{}, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if _, dup := tasks[t.ID]; dup || t.ID == uuid.Nil {
			return fmt.Errorf("%w: duplicate or empty task id %s", ErrInvalidSnapshot, t.ID)
		}
		tasks[t.ID] = struct{}{}

		if _, ok := projects[t.ProjectID]; !ok {
			return fmt.Errorf("%w: task %s references unknown project %s", ErrInvalidSnapshot, t.ID, t.ProjectID)
		}
		if t.EmployeeID != nil {
			if _, ok := employees[*t.EmployeeID]; !ok {
				return fmt.Errorf("%w: task %s references unknown employee %s", ErrInvalidSnapshot, t.ID, *t.EmployeeID)
			}
		}
	}
	return nil
}
