package workspace

import (
	"time"

	"github.com/google/uuid"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// PropagateOptions controls a week-copy run.
type PropagateOptions struct {
	// SkipHolidays silently drops copies whose projected date is a holiday.
	SkipHolidays bool
	// TeacherID, when set, restricts the source to one teacher's entries.
	TeacherID string
	// BatchID, when set, restricts the source to one batch's entries.
	BatchID string
}

// WeekCopy is the outcome for one target week.
type WeekCopy struct {
	WeekStart time.Time               `json:"week_start"`
	Entries   []models.TimetableEntry `json:"entries"`
	Skipped   int                     `json:"skipped"`
}

// Propagate replicates the source entries onto each target week. Every copy
// gets a fresh id; source ids are never reused across weeks. The copy is
// deliberately conflict-blind: it is a bulk-seeding convenience, and conflict
// detection still runs per week once the entries land in a grid. The
// returned count is the number of entries actually copied, which holiday
// skips can make smaller than len(source) * len(weekStarts).
func Propagate(source []models.TimetableEntry, weekStarts []time.Time, holidays []models.Holiday, opts PropagateOptions) ([]WeekCopy, int) {
	filtered := filterSource(source, opts)

	copies := make([]WeekCopy, 0, len(weekStarts))
	total := 0
	for _, weekStart := range weekStarts {
		week := WeekCopy{WeekStart: weekStart}
		for _, src := range filtered {
			offset, ok := src.Day.Offset()
			if !ok {
				week.Skipped++
				continue
			}
			projected := weekStart.AddDate(0, 0, offset)
			if opts.SkipHolidays && isHoliday(holidays, projected) {
				week.Skipped++
				continue
			}
			dup := src
			dup.ID = uuid.NewString()
			week.Entries = append(week.Entries, dup)
			total++
		}
		copies = append(copies, week)
	}
	return copies, total
}

func filterSource(source []models.TimetableEntry, opts PropagateOptions) []models.TimetableEntry {
	if opts.TeacherID == "" && opts.BatchID == "" {
		return source
	}
	var out []models.TimetableEntry
	for _, e := range source {
		if opts.TeacherID != "" && e.TeacherID != opts.TeacherID {
			continue
		}
		if opts.BatchID != "" && e.BatchID != opts.BatchID {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isHoliday(holidays []models.Holiday, date time.Time) bool {
	for _, h := range holidays {
		if h.SameDate(date) {
			return true
		}
	}
	return false
}
