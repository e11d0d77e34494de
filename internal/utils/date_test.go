package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-02-29", FormatDate(got))

	for _, bad := range []string{"", "2024-2-29", "29-02-2024", "2023-02-29", "2024/02/01", "2024-13-01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrDateFormat, "input %q", bad)
	}

	_, err = ParseDate("2021-12-31")
	assert.ErrorIs(t, err, ErrDateTooEarly)
}

func TestAddDays(t *testing.T) {
	start := StartOfDay(time.Date(2024, time.December, 30, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, "2024-12-30", FormatDate(start))
	assert.Equal(t, "2025-01-06", FormatDate(AddDays(start, 7)))
}
