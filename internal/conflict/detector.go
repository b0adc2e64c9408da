package conflict

import (
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// Detector computes every double-booking and overload conflict from a grid
// snapshot. Detection is pure and idempotent; conflicts are derived, never
// stored, and callers must treat the result as a set.
type Detector struct {
	maxTeacherPeriods int
}

// NewDetector builds a detector. maxTeacherPeriods is the weekly quota for
// the overload rule; zero or negative disables it.
func NewDetector(maxTeacherPeriods int) *Detector {
	return &Detector{maxTeacherPeriods: maxTeacherPeriods}
}

type slotKey struct {
	Day    models.Weekday
	Period int
}

// Detect returns the conflict set for the given entries.
func (d *Detector) Detect(entries []models.TimetableEntry) []models.Conflict {
	groups := make(map[slotKey][]models.TimetableEntry)
	teacherTotals := make(map[string]int)
	for _, e := range entries {
		key := slotKey{Day: e.Day, Period: e.Period}
		groups[key] = append(groups[key], e)
		teacherTotals[e.TeacherID]++
	}

	// Deduplicate by conflict key: three colliding entries yield one
	// conflict per (dimension, id, slot), not one per pair.
	seen := make(map[string]models.Conflict)
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}
		teacherCounts := make(map[string]int)
		batchCounts := make(map[string]int)
		for _, e := range group {
			teacherCounts[e.TeacherID]++
			batchCounts[e.BatchID]++
		}
		for teacherID, count := range teacherCounts {
			if count < 2 {
				continue
			}
			c := models.Conflict{
				Type:      models.ConflictTeacherDoubleBooked,
				Day:       key.Day,
				Period:    key.Period,
				TeacherID: teacherID,
				Count:     count,
			}
			seen[c.Key()] = c
		}
		for batchID, count := range batchCounts {
			if count < 2 {
				continue
			}
			c := models.Conflict{
				Type:    models.ConflictBatchDoubleBooked,
				Day:     key.Day,
				Period:  key.Period,
				BatchID: batchID,
				Count:   count,
			}
			seen[c.Key()] = c
		}
	}

	// Overload is evaluated separately: it has no single slot anchor.
	if d.maxTeacherPeriods > 0 {
		for teacherID, total := range teacherTotals {
			if total <= d.maxTeacherPeriods {
				continue
			}
			c := models.Conflict{
				Type:      models.ConflictOverload,
				TeacherID: teacherID,
				Count:     total,
			}
			seen[c.Key()] = c
		}
	}

	out := make([]models.Conflict, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	return out
}
