package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

func singleBatchTeacher() models.TeacherLoad {
	return models.TeacherLoad{
		TeacherID:   "t1",
		TeacherName: "Priya Sharma",
		WorkingDays: []models.Weekday{models.Monday, models.Tuesday},
		AllowedBatches: []models.AllowedBatch{
			{BatchID: "b1", BatchName: "Grade 9A", SubjectID: "s1", SubjectName: "Mathematics"},
		},
	}
}

func multiBatchTeacher() models.TeacherLoad {
	return models.TeacherLoad{
		TeacherID:   "t2",
		TeacherName: "Anil Kumar",
		WorkingDays: []models.Weekday{models.Monday, models.Wednesday},
		AllowedBatches: []models.AllowedBatch{
			{BatchID: "b1", BatchName: "Grade 9A", SubjectID: "s2", SubjectName: "Physics"},
			{BatchID: "b2", BatchName: "Grade 9B", SubjectID: "s2", SubjectName: "Physics"},
		},
	}
}

func TestAssignTeacherNotWorkingDay(t *testing.T) {
	w := New(Config{})

	_, err := w.AssignTeacher(singleBatchTeacher(), models.Wednesday, 1, "")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotWorkingDay))
	assert.Empty(t, w.Entries())
}

func TestAssignTeacherSingleBatchCommits(t *testing.T) {
	w := New(Config{})

	outcome, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)
	require.NotNil(t, outcome.Entry)
	assert.Nil(t, outcome.Pending)
	assert.Equal(t, "Mathematics", outcome.Entry.SubjectName)
	assert.Equal(t, models.PeriodRegular, outcome.Entry.PeriodType)
	assert.Len(t, w.Entries(), 1)
}

func TestAssignTeacherBusySlot(t *testing.T) {
	w := New(Config{})
	_, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)

	_, err = w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrTeacherConflict))
	assert.Len(t, w.Entries(), 1)
}

func TestAssignTeacherBatchBusy(t *testing.T) {
	w := New(Config{})
	_, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)

	// different teacher, same batch, same slot
	other := models.TeacherLoad{
		TeacherID:   "t9",
		TeacherName: "Sunita Rao",
		WorkingDays: []models.Weekday{models.Monday},
		AllowedBatches: []models.AllowedBatch{
			{BatchID: "b1", BatchName: "Grade 9A", SubjectID: "s3", SubjectName: "Chemistry"},
		},
	}
	_, err = w.AssignTeacher(other, models.Monday, 1, "")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrBatchConflict))
}

func TestAssignTeacherMultiBatchPends(t *testing.T) {
	w := New(Config{})

	outcome, err := w.AssignTeacher(multiBatchTeacher(), models.Monday, 2, "")
	require.NoError(t, err)
	assert.Nil(t, outcome.Entry)
	require.NotNil(t, outcome.Pending)
	assert.Empty(t, w.Entries())

	pending, ok := w.PendingDrop()
	require.True(t, ok)
	assert.Equal(t, models.Monday, pending.Day)
	assert.Equal(t, 2, pending.Period)
}

func TestResolvePendingDrop(t *testing.T) {
	w := New(Config{})
	_, err := w.AssignTeacher(multiBatchTeacher(), models.Monday, 2, "")
	require.NoError(t, err)

	entry, err := w.ResolvePendingDrop("b2", models.PeriodLab)
	require.NoError(t, err)
	assert.Equal(t, "Grade 9B", entry.BatchName)
	assert.Equal(t, models.PeriodLab, entry.PeriodType)
	assert.Len(t, w.Entries(), 1)

	_, ok := w.PendingDrop()
	assert.False(t, ok)
}

func TestResolvePendingDropUnknownBatch(t *testing.T) {
	w := New(Config{})
	_, err := w.AssignTeacher(multiBatchTeacher(), models.Monday, 2, "")
	require.NoError(t, err)

	_, err = w.ResolvePendingDrop("b99", "")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Empty(t, w.Entries())
}

func TestResolvePendingDropWithoutPending(t *testing.T) {
	w := New(Config{})

	_, err := w.ResolvePendingDrop("b1", "")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrPreconditionFailed))
}

func TestCancelPendingDrop(t *testing.T) {
	w := New(Config{})
	_, err := w.AssignTeacher(multiBatchTeacher(), models.Monday, 2, "")
	require.NoError(t, err)

	w.CancelPendingDrop()
	_, ok := w.PendingDrop()
	assert.False(t, ok)
	assert.Empty(t, w.Entries())
}

func TestMoveEntryOntoOwnSlot(t *testing.T) {
	w := New(Config{})
	outcome, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)

	moved, err := w.MoveEntry(outcome.Entry.ID, models.Monday, 1)
	require.NoError(t, err)
	assert.Equal(t, outcome.Entry.ID, moved.ID)
	// own-slot moves do not enter history
	assert.True(t, w.CanUndo())
	require.True(t, w.Undo())
	assert.False(t, w.CanUndo())
}

func TestMoveEntryConflicts(t *testing.T) {
	w := New(Config{})
	first, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)
	second, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 2, "")
	require.NoError(t, err)

	_, err = w.MoveEntry(second.Entry.ID, models.Monday, 1)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrTeacherConflict))

	got, err2 := w.MoveEntry(second.Entry.ID, models.Tuesday, 1)
	require.NoError(t, err2)
	assert.Equal(t, models.Tuesday, got.Day)
	_ = first
}

func TestAssignNeverCreatesDoubleBooking(t *testing.T) {
	w := New(Config{})

	for _, period := range []int{1, 2, 3} {
		_, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, period, "")
		require.NoError(t, err)
	}
	_, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 2, "")
	require.Error(t, err)

	for _, c := range w.Conflicts() {
		assert.NotEqual(t, models.ConflictTeacherDoubleBooked, c.Type)
		assert.NotEqual(t, models.ConflictBatchDoubleBooked, c.Type)
	}
}

func TestRemoveEntryAndUndo(t *testing.T) {
	w := New(Config{})
	outcome, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)

	require.NoError(t, w.RemoveEntry(outcome.Entry.ID))
	assert.Empty(t, w.Entries())

	require.True(t, w.Undo())
	assert.Len(t, w.Entries(), 1)

	err = w.RemoveEntry("missing")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrEntryNotFound))
}

func TestUndoRedoRoundTripOnWorkspace(t *testing.T) {
	w := New(Config{})
	out1, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)
	_, err = w.AssignTeacher(singleBatchTeacher(), models.Tuesday, 2, "")
	require.NoError(t, err)
	_, err = w.MoveEntry(out1.Entry.ID, models.Tuesday, 3)
	require.NoError(t, err)

	before := w.Entries()
	require.True(t, w.Undo())
	require.True(t, w.Redo())
	assert.Equal(t, before, w.Entries())

	require.True(t, w.Undo())
	require.True(t, w.Undo())
	require.True(t, w.Undo())
	assert.False(t, w.Undo())
	assert.Empty(t, w.Entries())
}

func TestDragLifecycle(t *testing.T) {
	w := New(Config{})

	w.BeginTeacherDrag(singleBatchTeacher())
	payload, ok := w.Dragging()
	require.True(t, ok)
	assert.Equal(t, DragTeacher, payload.Kind)
	require.NotNil(t, payload.Teacher)
	assert.Nil(t, payload.Entry)

	w.CancelDrag()
	_, ok = w.Dragging()
	assert.False(t, ok)
	assert.Empty(t, w.Entries())

	outcome, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)
	require.NoError(t, w.BeginEntryDrag(outcome.Entry.ID))
	payload, ok = w.Dragging()
	require.True(t, ok)
	assert.Equal(t, DragEntry, payload.Kind)
	require.NotNil(t, payload.Entry)

	assert.Error(t, w.BeginEntryDrag("missing"))
}

func TestSnapshotRestore(t *testing.T) {
	w := New(Config{})
	_, err := w.AssignTeacher(singleBatchTeacher(), models.Monday, 1, "")
	require.NoError(t, err)

	snapshot := w.Snapshot()

	other := New(Config{})
	other.Restore(snapshot)
	assert.Equal(t, snapshot, other.Entries())
	assert.False(t, other.CanUndo())
}
