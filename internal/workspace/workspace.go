package workspace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/suryakamal494/timetable-workspace-api/internal/conflict"
	"github.com/suryakamal494/timetable-workspace-api/internal/grid"
	"github.com/suryakamal494/timetable-workspace-api/internal/history"
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

// Config tunes one workspace instance.
type Config struct {
	// MaxTeacherPeriods feeds the overload conflict rule; zero disables it.
	MaxTeacherPeriods int
	// HistoryLimit caps undo depth; zero means unbounded.
	HistoryLimit int
}

// Workspace is one editing session over a scheduling grid: the grid itself,
// its command history, transient drag state and the pending-drop
// disambiguation. It is not safe for concurrent use; callers serialize
// mutations, matching the single-user editing model.
type Workspace struct {
	grid     *grid.Grid
	history  *history.History
	detector *conflict.Detector
	pending  *PendingDrop
	drag     *DragPayload
}

// PendingDrop holds a drop awaiting batch disambiguation: the teacher serves
// more than one batch and the UI must collect a choice before commit.
type PendingDrop struct {
	Day     models.Weekday     `json:"day"`
	Period  int                `json:"period"`
	Teacher models.TeacherLoad `json:"teacher"`
}

// DragKind discriminates the in-flight drag payload.
type DragKind string

const (
	DragTeacher DragKind = "teacher"
	DragEntry   DragKind = "entry"
)

// DragPayload is the explicit sum over the two things a user can pick up:
// a roster teacher (fresh assignment) or an existing entry (move). Exactly
// one of Teacher/Entry is set, per Kind.
type DragPayload struct {
	Kind    DragKind
	Teacher *models.TeacherLoad
	Entry   *models.TimetableEntry
}

// New creates an empty workspace.
func New(cfg Config) *Workspace {
	g := grid.New()
	return &Workspace{
		grid:     g,
		history:  history.New(g, cfg.HistoryLimit),
		detector: conflict.NewDetector(cfg.MaxTeacherPeriods),
	}
}

// Entries returns the current entry snapshot.
func (w *Workspace) Entries() []models.TimetableEntry {
	return w.grid.Entries()
}

// EntriesForTeacher returns the teacher's entries.
func (w *Workspace) EntriesForTeacher(teacherID string) []models.TimetableEntry {
	return w.grid.EntriesForTeacher(teacherID)
}

// EntriesForBatch returns the batch's entries.
func (w *Workspace) EntriesForBatch(batchID string) []models.TimetableEntry {
	return w.grid.EntriesForBatch(batchID)
}

// Conflicts recomputes the conflict set from the current grid.
func (w *Workspace) Conflicts() []models.Conflict {
	return w.detector.Detect(w.grid.Entries())
}

// AssignOutcome is the result of a placement request: either a committed
// entry or a pending drop needing batch selection.
type AssignOutcome struct {
	Entry   *models.TimetableEntry
	Pending *PendingDrop
}

// AssignTeacher validates and commits a fresh placement. When the teacher
// serves more than one batch nothing is committed; the returned outcome
// carries a PendingDrop that must be resolved or cancelled.
func (w *Workspace) AssignTeacher(teacher models.TeacherLoad, day models.Weekday, period int, periodType models.PeriodType) (*AssignOutcome, error) {
	if !teacher.WorksOn(day) {
		return nil, appErrors.Clone(appErrors.ErrNotWorkingDay, fmt.Sprintf("%s does not work on %s", teacher.TeacherName, day))
	}
	if w.teacherBusy(teacher.TeacherID, day, period, "") {
		return nil, appErrors.Clone(appErrors.ErrTeacherConflict, fmt.Sprintf("%s already has a period at %s %d", teacher.TeacherName, day, period))
	}
	if len(teacher.AllowedBatches) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s has no batch assignments", teacher.TeacherName))
	}
	if len(teacher.AllowedBatches) > 1 {
		w.pending = &PendingDrop{Day: day, Period: period, Teacher: teacher}
		return &AssignOutcome{Pending: w.pending}, nil
	}

	entry, err := w.commitNew(teacher, teacher.AllowedBatches[0], day, period, periodType)
	if err != nil {
		return nil, err
	}
	return &AssignOutcome{Entry: entry}, nil
}

// ResolvePendingDrop commits the held drop with the chosen batch and clears
// the pending state. The busy checks run again so an interleaved undo or
// import cannot sneak in a double booking.
func (w *Workspace) ResolvePendingDrop(batchID string, periodType models.PeriodType) (*models.TimetableEntry, error) {
	if w.pending == nil {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no drop awaiting batch selection")
	}
	batch, ok := w.pending.Teacher.BatchByID(batchID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("batch %s is not assigned to %s", batchID, w.pending.Teacher.TeacherName))
	}
	if w.teacherBusy(w.pending.Teacher.TeacherID, w.pending.Day, w.pending.Period, "") {
		return nil, appErrors.Clone(appErrors.ErrTeacherConflict, "teacher slot taken while awaiting selection")
	}

	entry, err := w.commitNew(w.pending.Teacher, batch, w.pending.Day, w.pending.Period, periodType)
	if err != nil {
		return nil, err
	}
	w.pending = nil
	return entry, nil
}

// PendingDrop returns the current disambiguation state, if any.
func (w *Workspace) PendingDrop() (*PendingDrop, bool) {
	if w.pending == nil {
		return nil, false
	}
	return w.pending, true
}

// CancelPendingDrop dismisses the disambiguation without committing.
func (w *Workspace) CancelPendingDrop() {
	w.pending = nil
}

// MoveEntry validates and commits a slot change for an existing entry.
// Moving an entry onto its own slot is a successful no-op.
func (w *Workspace) MoveEntry(entryID string, day models.Weekday, period int) (*models.TimetableEntry, error) {
	entry, ok := w.grid.Get(entryID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrEntryNotFound, fmt.Sprintf("entry %s not found", entryID))
	}
	if entry.Day == day && entry.Period == period {
		return &entry, nil
	}
	if w.teacherBusy(entry.TeacherID, day, period, entryID) {
		return nil, appErrors.Clone(appErrors.ErrTeacherConflict, fmt.Sprintf("%s already has a period at %s %d", entry.TeacherName, day, period))
	}
	if w.batchBusy(entry.BatchID, day, period, entryID) {
		return nil, appErrors.Clone(appErrors.ErrBatchConflict, fmt.Sprintf("%s already has a period at %s %d", entry.BatchName, day, period))
	}

	cmd := history.MoveCommand{
		EntryID: entryID,
		From:    entry.Slot(),
		To:      models.Slot{Day: day, Period: period},
	}
	if err := w.history.Apply(cmd); err != nil {
		return nil, err
	}
	moved, _ := w.grid.Get(entryID)
	return &moved, nil
}

// RemoveEntry deletes an entry through the command history.
func (w *Workspace) RemoveEntry(entryID string) error {
	entry, ok := w.grid.Get(entryID)
	if !ok {
		return appErrors.Clone(appErrors.ErrEntryNotFound, fmt.Sprintf("entry %s not found", entryID))
	}
	return w.history.Apply(history.RemoveCommand{Entry: entry})
}

// PlaceImported commits one validated import entry through the same checks a
// drop goes through, with the batch and subject already resolved.
func (w *Workspace) PlaceImported(teacher models.TeacherLoad, batch models.AllowedBatch, day models.Weekday, period int) (*models.TimetableEntry, error) {
	if !teacher.WorksOn(day) {
		return nil, appErrors.Clone(appErrors.ErrNotWorkingDay, fmt.Sprintf("%s does not work on %s", teacher.TeacherName, day))
	}
	if w.teacherBusy(teacher.TeacherID, day, period, "") {
		return nil, appErrors.Clone(appErrors.ErrTeacherConflict, fmt.Sprintf("%s already has a period at %s %d", teacher.TeacherName, day, period))
	}
	return w.commitNew(teacher, batch, day, period, models.PeriodRegular)
}

// Undo reverts the most recent mutation, reporting whether anything changed.
func (w *Workspace) Undo() bool {
	return w.history.Undo()
}

// Redo re-applies the most recently undone mutation.
func (w *Workspace) Redo() bool {
	return w.history.Redo()
}

// CanUndo reports undo availability.
func (w *Workspace) CanUndo() bool { return w.history.CanUndo() }

// CanRedo reports redo availability.
func (w *Workspace) CanRedo() bool { return w.history.CanRedo() }

// UndoDepth returns the number of mutations undo could revert.
func (w *Workspace) UndoDepth() int { return w.history.Depth() }

// UndoDescription describes what an undo would revert.
func (w *Workspace) UndoDescription() string { return w.history.UndoDescription() }

// RedoDescription describes what a redo would re-apply.
func (w *Workspace) RedoDescription() string { return w.history.RedoDescription() }

// BeginTeacherDrag records a picked-up roster teacher.
func (w *Workspace) BeginTeacherDrag(teacher models.TeacherLoad) {
	w.drag = &DragPayload{Kind: DragTeacher, Teacher: &teacher}
}

// BeginEntryDrag records a picked-up grid entry.
func (w *Workspace) BeginEntryDrag(entryID string) error {
	entry, ok := w.grid.Get(entryID)
	if !ok {
		return appErrors.Clone(appErrors.ErrEntryNotFound, fmt.Sprintf("entry %s not found", entryID))
	}
	w.drag = &DragPayload{Kind: DragEntry, Entry: &entry}
	return nil
}

// Dragging returns the in-flight payload, if any.
func (w *Workspace) Dragging() (*DragPayload, bool) {
	if w.drag == nil {
		return nil, false
	}
	return w.drag, true
}

// CancelDrag abandons the in-flight drag without side effects.
func (w *Workspace) CancelDrag() {
	w.drag = nil
}

// Snapshot exports the grid entries for session persistence.
func (w *Workspace) Snapshot() []models.TimetableEntry {
	return w.grid.Entries()
}

// Restore replaces the grid from a snapshot. History and transient state do
// not survive; a restored session starts with empty undo/redo stacks.
func (w *Workspace) Restore(entries []models.TimetableEntry) {
	w.grid.Restore(entries)
	w.history.Reset()
	w.pending = nil
	w.drag = nil
}

func (w *Workspace) commitNew(teacher models.TeacherLoad, batch models.AllowedBatch, day models.Weekday, period int, periodType models.PeriodType) (*models.TimetableEntry, error) {
	if w.batchBusy(batch.BatchID, day, period, "") {
		return nil, appErrors.Clone(appErrors.ErrBatchConflict, fmt.Sprintf("%s already has a period at %s %d", batch.BatchName, day, period))
	}
	if periodType == "" {
		periodType = models.PeriodRegular
	}
	entry := models.TimetableEntry{
		ID:          uuid.NewString(),
		Day:         day,
		Period:      period,
		SubjectID:   batch.SubjectID,
		SubjectName: batch.SubjectName,
		TeacherID:   teacher.TeacherID,
		TeacherName: teacher.TeacherName,
		BatchID:     batch.BatchID,
		BatchName:   batch.BatchName,
		PeriodType:  periodType,
	}
	if err := w.history.Apply(history.AddCommand{Entry: entry}); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (w *Workspace) teacherBusy(teacherID string, day models.Weekday, period int, excludeEntryID string) bool {
	for _, e := range w.grid.EntriesAt(day, period) {
		if e.ID == excludeEntryID {
			continue
		}
		if e.TeacherID == teacherID {
			return true
		}
	}
	return false
}

func (w *Workspace) batchBusy(batchID string, day models.Weekday, period int, excludeEntryID string) bool {
	for _, e := range w.grid.EntriesAt(day, period) {
		if e.ID == excludeEntryID {
			continue
		}
		if e.BatchID == batchID {
			return true
		}
	}
	return false
}
