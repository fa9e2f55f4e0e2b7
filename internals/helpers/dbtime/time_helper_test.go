package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBoundsUsesLocalCalendar(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	// 31 Okt 20:00 UTC = 1 Nov 03:00 WIB
	now := time.Date(2026, time.October, 31, 20, 0, 0, 0, time.UTC)

	start, end := MonthBounds(now, loc)

	assert.Equal(t, time.Date(2026, time.October, 31, 17, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.November, 30, 17, 0, 0, 0, time.UTC), end)
}

func TestTrailingDaysStart(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2026, time.October, 19, 10, 30, 0, 0, loc)

	got := TrailingDaysStart(now, 30, loc)

	assert.Equal(t, time.Date(2026, time.September, 20, 0, 0, 0, 0, loc), got)
}

func TestFormatLongID(t *testing.T) {
	assert.Equal(t, "1 Oktober 2026", FormatLongID(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)))
}
