package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/dto"
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	"github.com/suryakamal494/timetable-workspace-api/internal/workspace"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

type rosterMock struct {
	teachers map[string]*models.TeacherLoad
	batches  map[string]*models.Batch
	subjects map[string][]models.Subject
}

func (m *rosterMock) ListTeacherLoads(ctx context.Context, filter models.TeacherLoadFilter) ([]models.TeacherLoad, int, error) {
	loads, err := m.AllTeacherLoads(ctx)
	if err != nil {
		return nil, 0, err
	}
	return loads, len(loads), nil
}

func (m *rosterMock) AllTeacherLoads(ctx context.Context) ([]models.TeacherLoad, error) {
	loads := make([]models.TeacherLoad, 0, len(m.teachers))
	for _, t := range m.teachers {
		loads = append(loads, *t)
	}
	return loads, nil
}

func (m *rosterMock) FindTeacherLoad(ctx context.Context, teacherID string) (*models.TeacherLoad, error) {
	t, ok := m.teachers[teacherID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *t
	return &cp, nil
}

func (m *rosterMock) FindBatch(ctx context.Context, batchID string) (*models.Batch, error) {
	b, ok := m.batches[batchID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (m *rosterMock) ListBatchSubjects(ctx context.Context, batchID string) ([]models.Subject, error) {
	return m.subjects[batchID], nil
}

type holidayReaderMock struct {
	items []models.Holiday
}

func (m *holidayReaderMock) List(ctx context.Context) ([]models.Holiday, error) {
	return m.items, nil
}

type snapshotMock struct {
	stored map[string][]models.TimetableEntry
	saves  int
}

func newSnapshotMock() *snapshotMock {
	return &snapshotMock{stored: make(map[string][]models.TimetableEntry)}
}

func (m *snapshotMock) Load(ctx context.Context, workspaceID string) ([]models.TimetableEntry, bool, error) {
	entries, ok := m.stored[workspaceID]
	return entries, ok, nil
}

func (m *snapshotMock) Save(ctx context.Context, workspaceID string, entries []models.TimetableEntry) error {
	m.stored[workspaceID] = entries
	m.saves++
	return nil
}

func (m *snapshotMock) Delete(ctx context.Context, workspaceID string) error {
	delete(m.stored, workspaceID)
	return nil
}

func mathsBatch() models.AllowedBatch {
	return models.AllowedBatch{BatchID: "b1", BatchName: "Grade 8A", SubjectID: "s1", SubjectName: "Mathematics"}
}

func testRoster() *rosterMock {
	return &rosterMock{
		teachers: map[string]*models.TeacherLoad{
			"t1": {
				TeacherID:      "t1",
				TeacherName:    "Asha Verma",
				WorkingDays:    []models.Weekday{models.Monday, models.Tuesday, models.Thursday, models.Friday},
				AllowedBatches: []models.AllowedBatch{mathsBatch()},
			},
			"t2": {
				TeacherID:   "t2",
				TeacherName: "Ravi Iyer",
				WorkingDays: models.WorkingWeek,
				AllowedBatches: []models.AllowedBatch{
					{BatchID: "b1", BatchName: "Grade 8A", SubjectID: "s2", SubjectName: "Physics"},
					{BatchID: "b2", BatchName: "Grade 8B", SubjectID: "s2", SubjectName: "Physics"},
				},
			},
		},
		batches: map[string]*models.Batch{
			"b1": {ID: "b1", Name: "Grade 8A"},
		},
		subjects: map[string][]models.Subject{
			"b1": {
				{ID: "s1", Name: "Mathematics"},
				{ID: "s2", Name: "Physics"},
			},
		},
	}
}

func newTestWorkspaceService(snapshots *snapshotMock, holidays []models.Holiday) *WorkspaceService {
	return NewWorkspaceService(
		testRoster(),
		&holidayReaderMock{items: holidays},
		snapshots,
		workspace.Config{MaxTeacherPeriods: 30},
		validator.New(),
		zap.NewNop(),
	)
}

func TestWorkspaceServiceAssignCommits(t *testing.T) {
	snapshots := newSnapshotMock()
	svc := newTestWorkspaceService(snapshots, nil)

	resp, err := svc.Assign(context.Background(), "ws-1", dto.AssignRequest{
		TeacherID: "t1",
		Day:       "MONDAY",
		Period:    1,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Entry)
	assert.False(t, resp.RequiresSelection)
	assert.Equal(t, "Mathematics", resp.Entry.SubjectName)
	assert.True(t, resp.State.CanUndo)
	assert.Equal(t, 1, snapshots.saves)
}

func TestWorkspaceServiceAssignNonWorkingDay(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	_, err := svc.Assign(context.Background(), "ws-1", dto.AssignRequest{
		TeacherID: "t1",
		Day:       "WEDNESDAY",
		Period:    1,
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotWorkingDay))
}

func TestWorkspaceServiceAssignUnknownTeacher(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	_, err := svc.Assign(context.Background(), "ws-1", dto.AssignRequest{
		TeacherID: "missing",
		Day:       "MONDAY",
		Period:    1,
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestWorkspaceServiceMultiBatchNeedsResolution(t *testing.T) {
	snapshots := newSnapshotMock()
	svc := newTestWorkspaceService(snapshots, nil)

	resp, err := svc.Assign(context.Background(), "ws-1", dto.AssignRequest{
		TeacherID: "t2",
		Day:       "MONDAY",
		Period:    2,
	})
	require.NoError(t, err)
	assert.True(t, resp.RequiresSelection)
	assert.Nil(t, resp.Entry)
	assert.Empty(t, resp.State.Entries)
	assert.Equal(t, 0, snapshots.saves)

	resolved, err := svc.ResolveDrop(context.Background(), "ws-1", dto.ResolveDropRequest{BatchID: "b2"})
	require.NoError(t, err)
	require.NotNil(t, resolved.Entry)
	assert.Equal(t, "Grade 8B", resolved.Entry.BatchName)
	assert.Nil(t, resolved.State.PendingDrop)
	assert.Equal(t, 1, snapshots.saves)
}

func TestWorkspaceServiceCancelDrop(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	_, err := svc.Assign(context.Background(), "ws-1", dto.AssignRequest{
		TeacherID: "t2",
		Day:       "MONDAY",
		Period:    2,
	})
	require.NoError(t, err)

	state, err := svc.CancelDrop(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Nil(t, state.PendingDrop)

	_, err = svc.ResolveDrop(context.Background(), "ws-1", dto.ResolveDropRequest{BatchID: "b2"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrPreconditionFailed))
}

func TestWorkspaceServiceUndoRedoRoundTrip(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)
	ctx := context.Background()

	_, err := svc.Assign(ctx, "ws-1", dto.AssignRequest{TeacherID: "t1", Day: "MONDAY", Period: 1})
	require.NoError(t, err)

	undone, err := svc.Undo(ctx, "ws-1")
	require.NoError(t, err)
	assert.True(t, undone.Applied)
	assert.Empty(t, undone.State.Entries)

	redone, err := svc.Redo(ctx, "ws-1")
	require.NoError(t, err)
	assert.True(t, redone.Applied)
	assert.Len(t, redone.State.Entries, 1)
}

func TestWorkspaceServiceUndoEmptyHistory(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	resp, err := svc.Undo(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.False(t, resp.Applied)
}

func TestWorkspaceServiceRestoresFromSnapshot(t *testing.T) {
	snapshots := newSnapshotMock()
	snapshots.stored["ws-1"] = []models.TimetableEntry{
		{ID: "e1", Day: models.Monday, Period: 1, TeacherID: "t1", TeacherName: "Asha Verma", BatchID: "b1", SubjectName: "Mathematics"},
	}
	svc := newTestWorkspaceService(snapshots, nil)

	state, err := svc.State(context.Background(), "ws-1")
	require.NoError(t, err)
	require.Len(t, state.Entries, 1)
	assert.Equal(t, "e1", state.Entries[0].ID)
	assert.False(t, state.CanUndo)
}

func TestWorkspaceServiceMoveAndRemove(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)
	ctx := context.Background()

	created, err := svc.Assign(ctx, "ws-1", dto.AssignRequest{TeacherID: "t1", Day: "MONDAY", Period: 1})
	require.NoError(t, err)

	moved, err := svc.Move(ctx, "ws-1", dto.MoveRequest{EntryID: created.Entry.ID, Day: "TUESDAY", Period: 3})
	require.NoError(t, err)
	assert.Equal(t, models.Tuesday, moved.Entry.Day)
	assert.Equal(t, 3, moved.Entry.Period)

	removed, err := svc.Remove(ctx, "ws-1", created.Entry.ID)
	require.NoError(t, err)
	assert.Empty(t, removed.State.Entries)

	_, err = svc.Remove(ctx, "ws-1", created.Entry.ID)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrEntryNotFound))
}

func TestWorkspaceServicePropagateSkipsHolidays(t *testing.T) {
	holiday := models.Holiday{ID: "h1", Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), Name: "Founders Day"}
	svc := newTestWorkspaceService(newSnapshotMock(), []models.Holiday{holiday})
	ctx := context.Background()

	_, err := svc.Assign(ctx, "ws-1", dto.AssignRequest{TeacherID: "t1", Day: "MONDAY", Period: 1})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, "ws-1", dto.AssignRequest{TeacherID: "t1", Day: "TUESDAY", Period: 1})
	require.NoError(t, err)

	resp, err := svc.Propagate(ctx, "ws-1", dto.PropagateRequest{
		TargetWeekStarts: []string{"2026-09-07"},
		SkipHolidays:     true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Weeks, 1)
	// the Monday entry lands on the holiday itself and is skipped
	assert.Equal(t, 1, resp.Copied)
	assert.Equal(t, 1, resp.Weeks[0].Skipped)
}

func TestWorkspaceServicePropagateRejectsBadDate(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	_, err := svc.Propagate(context.Background(), "ws-1", dto.PropagateRequest{
		TargetWeekStarts: []string{"07-09-2026"},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestWorkspaceServiceImportValidateReportsUnknownTeacher(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	report, err := svc.ImportValidate(context.Background(), dto.ImportValidateRequest{
		BatchID: "b1",
		Entries: []dto.RecognizedEntryRequest{
			{Day: "MONDAY", Period: 1, Subject: "Mathematics", Teacher: "Nobody Known", Confidence: 0.99},
		},
	})
	require.NoError(t, err)
	assert.False(t, report.CanCommit)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, models.IssueTeacherNotFound, report.Issues[0].Code)
}

func TestWorkspaceServiceImportCommit(t *testing.T) {
	snapshots := newSnapshotMock()
	svc := newTestWorkspaceService(snapshots, nil)

	resp, err := svc.ImportCommit(context.Background(), "ws-1", dto.ImportCommitRequest{
		BatchID: "b1",
		Entries: []dto.RecognizedEntryRequest{
			{Day: "MONDAY", Period: 1, Subject: "Mathematics", Teacher: "Verma", Confidence: 0.95},
			{Day: "TUESDAY", Period: 2, Subject: "Physics", Teacher: "Iyer", Confidence: 0.91},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Committed)
	assert.Empty(t, resp.Failures)
	assert.Len(t, resp.State.Entries, 2)
	assert.Equal(t, 1, snapshots.saves)
}

func TestWorkspaceServiceImportCommitBlockedByErrors(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)

	_, err := svc.ImportCommit(context.Background(), "ws-1", dto.ImportCommitRequest{
		BatchID: "b1",
		Entries: []dto.RecognizedEntryRequest{
			{Day: "MONDAY", Period: 1, Subject: "History", Teacher: "Verma", Confidence: 0.95},
		},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrImportBlocked))
}

func TestWorkspaceServiceImportCommitRequiresAcknowledgedWarnings(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)
	req := dto.ImportCommitRequest{
		BatchID: "b1",
		Entries: []dto.RecognizedEntryRequest{
			{Day: "MONDAY", Period: 1, Subject: "Mathematics", Teacher: "Verma", Confidence: 0.5},
		},
	}

	_, err := svc.ImportCommit(context.Background(), "ws-1", req)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrPreconditionFailed))

	req.AcknowledgeWarnings = true
	resp, err := svc.ImportCommit(context.Background(), "ws-1", req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Committed)
}

func TestWorkspaceServiceImportCommitCollectsPlacementFailures(t *testing.T) {
	svc := newTestWorkspaceService(newSnapshotMock(), nil)
	ctx := context.Background()

	// occupy MONDAY period 1 for the same teacher beforehand
	_, err := svc.Assign(ctx, "ws-1", dto.AssignRequest{TeacherID: "t1", Day: "MONDAY", Period: 1})
	require.NoError(t, err)

	resp, err := svc.ImportCommit(ctx, "ws-1", dto.ImportCommitRequest{
		BatchID: "b1",
		Entries: []dto.RecognizedEntryRequest{
			{Day: "MONDAY", Period: 1, Subject: "Mathematics", Teacher: "Verma", Confidence: 0.95},
			{Day: "FRIDAY", Period: 4, Subject: "Mathematics", Teacher: "Verma", Confidence: 0.95},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Committed)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, appErrors.ErrTeacherConflict.Code, resp.Failures[0].Code)
}
