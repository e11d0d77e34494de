// Package settings holds the user-adjustable preferences. Defaults come from
// a YAML file; changes made at runtime are persisted through a repository.
package settings

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/yukikurage/project-tracker/internal/constants"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/repository"
	"gopkg.in/yaml.v3"
)

// Builtin returns the settings used when no defaults file is present
func Builtin() models.Settings {
	return models.Settings{
		URL:              constants.DefaultSettingsURL,
		MaxEntries:       constants.DefaultMaxEntries,
		DaysBetweenDates: constants.DefaultDaysBetweenDates,
	}
}

// LoadDefaults reads default settings from a YAML file. A missing file yields
// the builtin defaults; fields the file leaves out keep their builtin value.
func LoadDefaults(path string) (models.Settings, error) {
	defaults := Builtin()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return models.Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := defaults.Validate(); err != nil {
		return models.Settings{}, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return defaults, nil
}

// Service caches the current settings and writes changes through to the repository
type Service struct {
	mu      sync.RWMutex
	current models.Settings
	repo    repository.SettingsRepository
	logger  *slog.Logger
}

// NewService loads the persisted settings. On first run the defaults file is
// read and saved so later runs start from the same values.
func NewService(repo repository.SettingsRepository, defaultsFile string, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Service{repo: repo, logger: logger}

	current, err := repo.Load()
	switch {
	case err == nil:
		logger.Info("settings loaded", "url", current.URL, "max_entries", current.MaxEntries)
	case errors.Is(err, repository.ErrSettingsNotFound):
		current, err = LoadDefaults(defaultsFile)
		if err != nil {
			return nil, err
		}
		if err := repo.Save(current); err != nil {
			return nil, fmt.Errorf("failed to save default settings: %w", err)
		}
		logger.Info("default settings saved", "file", defaultsFile)
	default:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s.current = current
	return s, nil
}

// Load returns the current settings
func (s *Service) Load() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save validates and persists settings. The cached value only changes once
// the repository has accepted the write.
func (s *Service) Save(settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return apierrors.Validation(err.Error(), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(settings); err != nil {
		s.logger.Error("failed to save settings", "error", err)
		return apierrors.ErrInternalError
	}
	s.current = settings

	s.logger.Info("settings updated",
		"url", settings.URL,
		"max_entries", settings.MaxEntries,
		"days_between_dates", settings.DaysBetweenDates,
	)
	return nil
}
