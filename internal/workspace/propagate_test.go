package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// mondays
var (
	sourceWeek = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	targetWeek = time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	thirdWeek  = time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
)

func sourceEntries() []models.TimetableEntry {
	return []models.TimetableEntry{
		{ID: "e1", Day: models.Monday, Period: 1, TeacherID: "t1", BatchID: "b1"},
		{ID: "e2", Day: models.Wednesday, Period: 3, TeacherID: "t1", BatchID: "b1"},
		{ID: "e3", Day: models.Friday, Period: 5, TeacherID: "t2", BatchID: "b2"},
	}
}

func TestPropagateCopiesAllWithoutHolidays(t *testing.T) {
	copies, total := Propagate(sourceEntries(), []time.Time{targetWeek, thirdWeek}, nil, PropagateOptions{SkipHolidays: true})

	assert.Equal(t, 6, total)
	require.Len(t, copies, 2)
	assert.Len(t, copies[0].Entries, 3)
	assert.Len(t, copies[1].Entries, 3)
}

func TestPropagateFreshIDs(t *testing.T) {
	copies, _ := Propagate(sourceEntries(), []time.Time{targetWeek}, nil, PropagateOptions{})

	seen := map[string]bool{"e1": true, "e2": true, "e3": true}
	for _, copied := range copies[0].Entries {
		assert.False(t, seen[copied.ID], "source id reused: %s", copied.ID)
		seen[copied.ID] = true
	}
}

func TestPropagateSkipsHolidayDates(t *testing.T) {
	holidays := []models.Holiday{
		{ID: "h1", Date: targetWeek.AddDate(0, 0, 2), Name: "Founders Day"}, // Wednesday
	}

	copies, total := Propagate(sourceEntries(), []time.Time{targetWeek}, holidays, PropagateOptions{SkipHolidays: true})

	assert.Equal(t, 2, total)
	require.Len(t, copies, 1)
	assert.Equal(t, 1, copies[0].Skipped)
	for _, copied := range copies[0].Entries {
		assert.NotEqual(t, models.Wednesday, copied.Day)
	}
}

func TestPropagateAllHolidayWeekCopiesNothing(t *testing.T) {
	var holidays []models.Holiday
	for offset := 0; offset < 6; offset++ {
		holidays = append(holidays, models.Holiday{Date: targetWeek.AddDate(0, 0, offset)})
	}

	_, total := Propagate(sourceEntries(), []time.Time{targetWeek}, holidays, PropagateOptions{SkipHolidays: true})
	assert.Equal(t, 0, total)
}

func TestPropagateHolidaysIgnoredWhenNotSkipping(t *testing.T) {
	holidays := []models.Holiday{{Date: targetWeek}}

	_, total := Propagate(sourceEntries(), []time.Time{targetWeek}, holidays, PropagateOptions{SkipHolidays: false})
	assert.Equal(t, 3, total)
}

func TestPropagateSourceFilters(t *testing.T) {
	copies, total := Propagate(sourceEntries(), []time.Time{targetWeek}, nil, PropagateOptions{TeacherID: "t1"})
	assert.Equal(t, 2, total)

	copies, total = Propagate(sourceEntries(), []time.Time{targetWeek}, nil, PropagateOptions{BatchID: "b2"})
	assert.Equal(t, 1, total)
	assert.Equal(t, models.Friday, copies[0].Entries[0].Day)
}
