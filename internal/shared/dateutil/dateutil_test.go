package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay_StripsTimeAndZone(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2025, 3, 10, 23, 45, 12, 0, loc)

	got := Day(in)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2025-03-05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("05-03-2025")
	assert.Error(t, err)
}

func TestRange_InclusiveBoundaries(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	days := Range(start, end)

	assert.Len(t, days, 3)
	assert.Equal(t, start, days[0])
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), days[1])
	assert.Equal(t, end, days[2])
}

func TestRange_SingleDay(t *testing.T) {
	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	days := Range(d, d)
	assert.Len(t, days, 1)
	assert.Equal(t, d, days[0])
}

func TestRange_Inverted(t *testing.T) {
	start := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, Range(start, end))
}

func TestRange_NormalizesInputs(t *testing.T) {
	start := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)

	days := Range(start, end)

	assert.Len(t, days, 2)
	for _, d := range days {
		assert.Equal(t, 0, d.Hour())
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2025, 3)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = MonthBounds(2025, 12)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
