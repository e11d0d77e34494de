package repository

import (
	"errors"

	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/store"
)

// ErrSettingsNotFound is returned when no settings have been saved yet
var ErrSettingsNotFound = errors.New("settings not found")

// SnapshotRepository defines the interface for persisting store state
type SnapshotRepository interface {
	// Load reads the last saved snapshot. An empty database yields an empty snapshot.
	Load() (store.Snapshot, error)

	// Save replaces the persisted snapshot with snap
	Save(snap store.Snapshot) error
}

// SettingsRepository defines the interface for settings data access
type SettingsRepository interface {
	// Load returns the saved settings or ErrSettingsNotFound
	Load() (models.Settings, error)

	// Save creates or overwrites the saved settings
	Save(settings models.Settings) error
}
