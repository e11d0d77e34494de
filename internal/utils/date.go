package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-tracker/internal/constants"
)

var (
	ErrDateFormat   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrDateTooEarly = fmt.Errorf("date must not be before %d", constants.MinTaskYear)
)

// ParseDate parses a strict YYYY-MM-DD date in UTC
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) != len(constants.DateLayout) {
		return time.Time{}, ErrDateFormat
	}

	date, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	if date.Year() < constants.MinTaskYear {
		return time.Time{}, ErrDateTooEarly
	}
	return date, nil
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// StartOfDay truncates t to midnight UTC of the same calendar day
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a date by whole calendar days
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
