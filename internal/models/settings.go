package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Settings are the user-adjustable application preferences
type Settings struct {
	URL              string `json:"url" yaml:"url"`
	MaxEntries       int    `json:"max_entries" yaml:"max_entries"`
	DaysBetweenDates int    `json:"days_between_dates" yaml:"days_between_dates"`
}

// Validate checks field constraints
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.URL, validation.Required.Error("url is required"), is.URL.Error("url is malformed")),
		validation.Field(&s.MaxEntries,
			validation.Required.Error("max entries is required"),
			validation.Min(1).Error("max entries must be positive"),
		),
		validation.Field(&s.DaysBetweenDates, validation.Min(0).Error("days between dates must not be negative")),
	)
}

// SettingsRecord is the single persisted settings row
type SettingsRecord struct {
	ID               uint64 `gorm:"primarykey"`
	URL              string `gorm:"type:varchar(2048);not null"`
	MaxEntries       int    `gorm:"not null"`
	DaysBetweenDates int    `gorm:"not null"`
	UpdatedAt        time.Time
}

// SettingsRecordID is the primary key of the only settings row
const SettingsRecordID = 1

// ToSettings converts the persisted row to Settings
func (r SettingsRecord) ToSettings() Settings {
	return Settings{
		URL:              r.URL,
		MaxEntries:       r.MaxEntries,
		DaysBetweenDates: r.DaysBetweenDates,
	}
}

// ToSettingsRecord converts Settings to the persisted row
func ToSettingsRecord(s Settings) SettingsRecord {
	return SettingsRecord{
		ID:               SettingsRecordID,
		URL:              s.URL,
		MaxEntries:       s.MaxEntries,
		DaysBetweenDates: s.DaysBetweenDates,
	}
}
