package grid

import (
	"fmt"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

// Grid holds the authoritative ordered sequence of timetable entries for one
// editing session. It is a dumb store: mutations rewrite state without any
// double-booking checks, which belong to the assignment protocol. All writes
// are expected to arrive through the command history so they stay reversible.
type Grid struct {
	entries []models.TimetableEntry
	index   map[string]int
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{index: make(map[string]int)}
}

// Add appends an entry. Fails when the id is already present.
func (g *Grid) Add(entry models.TimetableEntry) error {
	if _, exists := g.index[entry.ID]; exists {
		return appErrors.Clone(appErrors.ErrDuplicateID, fmt.Sprintf("entry %s already present", entry.ID))
	}
	g.index[entry.ID] = len(g.entries)
	g.entries = append(g.entries, entry)
	return nil
}

// Remove deletes the entry with the given id and returns it so callers can
// build an inverse command. Fails when the id is absent.
func (g *Grid) Remove(id string) (models.TimetableEntry, error) {
	pos, exists := g.index[id]
	if !exists {
		return models.TimetableEntry{}, appErrors.Clone(appErrors.ErrEntryNotFound, fmt.Sprintf("entry %s not found", id))
	}
	removed := g.entries[pos]
	g.entries = append(g.entries[:pos], g.entries[pos+1:]...)
	delete(g.index, id)
	for i := pos; i < len(g.entries); i++ {
		g.index[g.entries[i].ID] = i
	}
	return removed, nil
}

// Move rewrites the entry's slot fields and returns the previous slot.
func (g *Grid) Move(id string, day models.Weekday, period int) (models.Slot, error) {
	pos, exists := g.index[id]
	if !exists {
		return models.Slot{}, appErrors.Clone(appErrors.ErrEntryNotFound, fmt.Sprintf("entry %s not found", id))
	}
	prev := g.entries[pos].Slot()
	g.entries[pos].Day = day
	g.entries[pos].Period = period
	return prev, nil
}

// Get returns the entry with the given id.
func (g *Grid) Get(id string) (models.TimetableEntry, bool) {
	pos, exists := g.index[id]
	if !exists {
		return models.TimetableEntry{}, false
	}
	return g.entries[pos], true
}

// Len reports the number of entries.
func (g *Grid) Len() int {
	return len(g.entries)
}

// Entries returns a read snapshot of all entries in insertion order.
func (g *Grid) Entries() []models.TimetableEntry {
	out := make([]models.TimetableEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// EntriesAt returns every entry occupying the given slot.
func (g *Grid) EntriesAt(day models.Weekday, period int) []models.TimetableEntry {
	var out []models.TimetableEntry
	for _, e := range g.entries {
		if e.Day == day && e.Period == period {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForTeacher returns every entry taught by the given teacher.
func (g *Grid) EntriesForTeacher(teacherID string) []models.TimetableEntry {
	var out []models.TimetableEntry
	for _, e := range g.entries {
		if e.TeacherID == teacherID {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForBatch returns every entry scheduled for the given batch.
func (g *Grid) EntriesForBatch(batchID string) []models.TimetableEntry {
	var out []models.TimetableEntry
	for _, e := range g.entries {
		if e.BatchID == batchID {
			out = append(out, e)
		}
	}
	return out
}

// Restore replaces the grid contents wholesale. Used when rehydrating a
// session snapshot; command history does not survive a restore.
func (g *Grid) Restore(entries []models.TimetableEntry) {
	g.entries = make([]models.TimetableEntry, len(entries))
	copy(g.entries, entries)
	g.index = make(map[string]int, len(entries))
	for i, e := range g.entries {
		g.index[e.ID] = i
	}
}
