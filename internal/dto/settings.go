package dto

import (
	"github.com/yukikurage/project-tracker/internal/models"
)

// SettingsDTO is both the request and response form of the settings
type SettingsDTO struct {
	URL              string `json:"url"`
	MaxEntries       int    `json:"max_entries"`
	DaysBetweenDates int    `json:"days_between_dates"`
}

func ToSettingsDTO(s models.Settings) SettingsDTO {
	return SettingsDTO{
		URL:              s.URL,
		MaxEntries:       s.MaxEntries,
		DaysBetweenDates: s.DaysBetweenDates,
	}
}

func (d SettingsDTO) ToSettings() models.Settings {
	return models.Settings{
		URL:              d.URL,
		MaxEntries:       d.MaxEntries,
		DaysBetweenDates: d.DaysBetweenDates,
	}
}
