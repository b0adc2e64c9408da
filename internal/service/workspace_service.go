package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/dto"
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	"github.com/suryakamal494/timetable-workspace-api/internal/workspace"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

type rosterRepository interface {
	ListTeacherLoads(ctx context.Context, filter models.TeacherLoadFilter) ([]models.TeacherLoad, int, error)
	AllTeacherLoads(ctx context.Context) ([]models.TeacherLoad, error)
	FindTeacherLoad(ctx context.Context, teacherID string) (*models.TeacherLoad, error)
	FindBatch(ctx context.Context, batchID string) (*models.Batch, error)
	ListBatchSubjects(ctx context.Context, batchID string) ([]models.Subject, error)
}

type holidayReader interface {
	List(ctx context.Context) ([]models.Holiday, error)
}

type snapshotStore interface {
	Load(ctx context.Context, workspaceID string) ([]models.TimetableEntry, bool, error)
	Save(ctx context.Context, workspaceID string, entries []models.TimetableEntry) error
	Delete(ctx context.Context, workspaceID string) error
}

// WorkspaceService orchestrates editing sessions: one Workspace per
// workspace id, restored from the snapshot store on first touch and saved
// back after every committed mutation. Command history lives only in memory;
// a restored session starts with empty undo/redo stacks.
type WorkspaceService struct {
	roster    rosterRepository
	holidays  holidayReader
	snapshots snapshotStore
	importer  *workspace.ImportValidator
	cfg       workspace.Config
	validator *validator.Validate
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*workspace.Workspace
}

// NewWorkspaceService builds the service.
func NewWorkspaceService(roster rosterRepository, holidays holidayReader, snapshots snapshotStore, cfg workspace.Config, validate *validator.Validate, logger *zap.Logger) *WorkspaceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkspaceService{
		roster:    roster,
		holidays:  holidays,
		snapshots: snapshots,
		importer:  workspace.NewImportValidator(nil),
		cfg:       cfg,
		validator: validate,
		logger:    logger,
		sessions:  make(map[string]*workspace.Workspace),
	}
}

// session returns the live workspace for an id, restoring it from the
// snapshot store when the process has not seen it yet. Callers must hold
// s.mu.
func (s *WorkspaceService) session(ctx context.Context, workspaceID string) *workspace.Workspace {
	if ws, ok := s.sessions[workspaceID]; ok {
		return ws
	}

	ws := workspace.New(s.cfg)
	entries, found, err := s.snapshots.Load(ctx, workspaceID)
	if err != nil {
		s.logger.Warn("failed to load workspace snapshot, starting empty",
			zap.String("workspace_id", workspaceID), zap.Error(err))
	} else if found {
		ws.Restore(entries)
	}
	s.sessions[workspaceID] = ws
	return ws
}

// persist saves the current grid; a store failure never fails the mutation
// that preceded it.
func (s *WorkspaceService) persist(ctx context.Context, workspaceID string, ws *workspace.Workspace) {
	if err := s.snapshots.Save(ctx, workspaceID, ws.Snapshot()); err != nil {
		s.logger.Warn("failed to save workspace snapshot",
			zap.String("workspace_id", workspaceID), zap.Error(err))
	}
}

func (s *WorkspaceService) state(ws *workspace.Workspace) dto.WorkspaceState {
	pending, _ := ws.PendingDrop()
	return dto.WorkspaceState{
		Entries:         ws.Entries(),
		Conflicts:       ws.Conflicts(),
		CanUndo:         ws.CanUndo(),
		CanRedo:         ws.CanRedo(),
		UndoDepth:       ws.UndoDepth(),
		UndoDescription: ws.UndoDescription(),
		RedoDescription: ws.RedoDescription(),
		PendingDrop:     pending,
	}
}

// State returns the current grid, conflicts and history availability.
func (s *WorkspaceService) State(ctx context.Context, workspaceID string) (*dto.WorkspaceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(s.session(ctx, workspaceID))
	return &state, nil
}

// Assign places a teacher on a slot, or parks a pending drop when the
// teacher serves more than one batch.
func (s *WorkspaceService) Assign(ctx context.Context, workspaceID string, req dto.AssignRequest) (*dto.AssignResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	day, ok := models.ParseWeekday(req.Day)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", req.Day))
	}

	teacher, err := s.roster.FindTeacherLoad(ctx, req.TeacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	outcome, err := ws.AssignTeacher(*teacher, day, req.Period, models.PeriodType(req.PeriodType))
	if err != nil {
		return nil, err
	}
	if outcome.Entry != nil {
		s.persist(ctx, workspaceID, ws)
	}
	return &dto.AssignResponse{
		Entry:             outcome.Entry,
		RequiresSelection: outcome.Pending != nil,
		State:             s.state(ws),
	}, nil
}

// ResolveDrop commits the pending drop with the chosen batch.
func (s *WorkspaceService) ResolveDrop(ctx context.Context, workspaceID string, req dto.ResolveDropRequest) (*dto.MutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resolve payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	entry, err := ws.ResolvePendingDrop(req.BatchID, models.PeriodType(req.PeriodType))
	if err != nil {
		return nil, err
	}
	s.persist(ctx, workspaceID, ws)
	return &dto.MutationResponse{Entry: entry, State: s.state(ws)}, nil
}

// CancelDrop dismisses the pending drop without committing anything.
func (s *WorkspaceService) CancelDrop(ctx context.Context, workspaceID string) (*dto.WorkspaceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	ws.CancelPendingDrop()
	state := s.state(ws)
	return &state, nil
}

// Move relocates an existing entry.
func (s *WorkspaceService) Move(ctx context.Context, workspaceID string, req dto.MoveRequest) (*dto.MutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid move payload")
	}
	day, ok := models.ParseWeekday(req.Day)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", req.Day))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	entry, err := ws.MoveEntry(req.EntryID, day, req.Period)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, workspaceID, ws)
	return &dto.MutationResponse{Entry: entry, State: s.state(ws)}, nil
}

// Remove deletes an entry through the command history.
func (s *WorkspaceService) Remove(ctx context.Context, workspaceID, entryID string) (*dto.MutationResponse, error) {
	if entryID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "entry id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	if err := ws.RemoveEntry(entryID); err != nil {
		return nil, err
	}
	s.persist(ctx, workspaceID, ws)
	return &dto.MutationResponse{State: s.state(ws)}, nil
}

// Undo reverts the most recent mutation. Undo on an empty history is a
// successful no-op.
func (s *WorkspaceService) Undo(ctx context.Context, workspaceID string) (*dto.HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	applied := ws.Undo()
	if applied {
		s.persist(ctx, workspaceID, ws)
	}
	return &dto.HistoryResponse{Applied: applied, State: s.state(ws)}, nil
}

// Redo re-applies the most recently undone mutation.
func (s *WorkspaceService) Redo(ctx context.Context, workspaceID string) (*dto.HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	applied := ws.Redo()
	if applied {
		s.persist(ctx, workspaceID, ws)
	}
	return &dto.HistoryResponse{Applied: applied, State: s.state(ws)}, nil
}

// Propagate copies the current week's entries onto other weeks. The copies
// are returned to the caller; the source workspace itself is untouched.
func (s *WorkspaceService) Propagate(ctx context.Context, workspaceID string, req dto.PropagateRequest) (*dto.PropagateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid propagate payload")
	}

	weekStarts := make([]time.Time, 0, len(req.TargetWeekStarts))
	for _, raw := range req.TargetWeekStarts {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid week start %q, want YYYY-MM-DD", raw))
		}
		weekStarts = append(weekStarts, t)
	}

	var holidays []models.Holiday
	if req.SkipHolidays {
		var err error
		holidays, err = s.holidays.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load holidays")
		}
	}

	s.mu.Lock()
	source := s.session(ctx, workspaceID).Entries()
	s.mu.Unlock()

	weeks, copied := workspace.Propagate(source, weekStarts, holidays, workspace.PropagateOptions{
		SkipHolidays: req.SkipHolidays,
		TeacherID:    req.TeacherID,
		BatchID:      req.BatchID,
	})
	return &dto.PropagateResponse{Copied: copied, Weeks: weeks}, nil
}

// ImportValidate classifies a recognized batch against the roster without
// touching any grid.
func (s *WorkspaceService) ImportValidate(ctx context.Context, req dto.ImportValidateRequest) (*models.ImportReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}

	entries, err := toRecognizedEntries(req.Entries)
	if err != nil {
		return nil, err
	}
	rc, err := s.importContext(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}

	report := s.importer.Validate(entries, *rc)
	return &report, nil
}

// ImportCommit re-validates the batch and places every resolved entry through
// the regular placement checks. Blocking errors abort before any placement;
// warnings require explicit acknowledgement.
func (s *WorkspaceService) ImportCommit(ctx context.Context, workspaceID string, req dto.ImportCommitRequest) (*dto.ImportCommitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}

	entries, err := toRecognizedEntries(req.Entries)
	if err != nil {
		return nil, err
	}
	rc, err := s.importContext(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}

	report := s.importer.Validate(entries, *rc)
	if report.ErrorCount > 0 {
		return nil, appErrors.Clone(appErrors.ErrImportBlocked, fmt.Sprintf("%d blocking errors in import batch", report.ErrorCount))
	}
	if report.WarningCount > 0 && !req.AcknowledgeWarnings {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, fmt.Sprintf("%d warnings must be acknowledged before commit", report.WarningCount))
	}

	teachersByID := make(map[string]models.TeacherLoad, len(rc.Teachers))
	for _, t := range rc.Teachers {
		teachersByID[t.TeacherID] = t
	}
	subjectNames := make(map[string]string, len(rc.Subjects))
	for _, sub := range rc.Subjects {
		subjectNames[sub.ID] = sub.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.session(ctx, workspaceID)
	resp := &dto.ImportCommitResponse{}
	for _, res := range report.Resolutions {
		entry := report.Entries[res.EntryIndex]
		batch := models.AllowedBatch{
			BatchID:     rc.BatchID,
			BatchName:   rc.BatchName,
			SubjectID:   res.SubjectID,
			SubjectName: subjectNames[res.SubjectID],
		}
		if _, err := ws.PlaceImported(teachersByID[res.TeacherID], batch, entry.Day, entry.Period); err != nil {
			appErr := appErrors.FromError(err)
			resp.Failures = append(resp.Failures, dto.ImportCommitFailure{
				EntryIndex: res.EntryIndex,
				Code:       appErr.Code,
				Message:    appErr.Message,
			})
			continue
		}
		resp.Committed++
	}

	if resp.Committed > 0 {
		s.persist(ctx, workspaceID, ws)
	}
	resp.State = s.state(ws)
	return resp, nil
}

func (s *WorkspaceService) importContext(ctx context.Context, batchID string) (*workspace.ImportContext, error) {
	batch, err := s.roster.FindBatch(ctx, batchID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}
	subjects, err := s.roster.ListBatchSubjects(ctx, batchID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch subjects")
	}
	teachers, err := s.roster.AllTeacherLoads(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher roster")
	}
	return &workspace.ImportContext{
		BatchID:   batch.ID,
		BatchName: batch.Name,
		Teachers:  teachers,
		Subjects:  subjects,
	}, nil
}

func toRecognizedEntries(raw []dto.RecognizedEntryRequest) ([]models.RecognizedEntry, error) {
	entries := make([]models.RecognizedEntry, 0, len(raw))
	for _, r := range raw {
		day, ok := models.ParseWeekday(r.Day)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", r.Day))
		}
		entries = append(entries, models.RecognizedEntry{
			Day:        day,
			Period:     r.Period,
			Subject:    r.Subject,
			Teacher:    r.Teacher,
			Confidence: r.Confidence,
		})
	}
	return entries, nil
}
