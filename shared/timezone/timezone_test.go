package timezone_test

import (
	"testing"
	"time"

	"ecoparking/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", timezone.Format(parsed, "2006-01-02"))
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
}

func TestStartOfWeekIsSunday(t *testing.T) {
	loc := timezone.GetLocation()
	// Thursday
	ref := time.Date(2024, 3, 14, 17, 45, 0, 0, loc)

	start := timezone.StartOfWeek(ref)

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), start)
}

func TestStartOfWeekOnSunday(t *testing.T) {
	loc := timezone.GetLocation()
	ref := time.Date(2024, 3, 10, 9, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), timezone.StartOfWeek(ref))
}

func TestDayAndMonthBounds(t *testing.T) {
	loc := timezone.GetLocation()
	ref := time.Date(2024, 2, 29, 23, 10, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), timezone.StartOfDay(ref))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), timezone.StartOfMonth(ref))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond), timezone.EndOfDay(ref))
}
