package constants

// Context keys
const (
	ContextKeyEntityID = "entity_id"
)

// List limits
const (
	MinListLimit     = 1
	DefaultListLimit = 20
	MaxListLimit     = 1000
)

// Store defaults
const (
	DefaultStoreDelayMS = 1000
	MaxIDAttempts       = 3
)

// Dates are exchanged as YYYY-MM-DD and must not predate MinTaskYear
const (
	DateLayout  = "2006-01-02"
	MinTaskYear = 2022
)

// Settings defaults used when no settings file is available
const (
	DefaultSettingsURL      = "http://localhost:8080"
	DefaultMaxEntries       = DefaultListLimit
	DefaultDaysBetweenDates = 7
)
