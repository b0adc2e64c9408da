package dto

import (
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	"github.com/suryakamal494/timetable-workspace-api/internal/workspace"
)

// AssignRequest asks for a fresh teacher placement on a slot.
type AssignRequest struct {
	TeacherID  string `json:"teacher_id" validate:"required"`
	Day        string `json:"day" validate:"required"`
	Period     int    `json:"period" validate:"required,min=1"`
	PeriodType string `json:"period_type" validate:"omitempty,oneof=REGULAR LAB SPORTS LIBRARY"`
}

// ResolveDropRequest supplies the batch choice for a pending drop.
type ResolveDropRequest struct {
	BatchID    string `json:"batch_id" validate:"required"`
	PeriodType string `json:"period_type" validate:"omitempty,oneof=REGULAR LAB SPORTS LIBRARY"`
}

// MoveRequest relocates an existing entry.
type MoveRequest struct {
	EntryID string `json:"entry_id" validate:"required"`
	Day     string `json:"day" validate:"required"`
	Period  int    `json:"period" validate:"required,min=1"`
}

// PropagateRequest copies the current week onto other weeks.
type PropagateRequest struct {
	TargetWeekStarts []string `json:"target_week_starts" validate:"required,min=1,dive,required"`
	SkipHolidays     bool     `json:"skip_holidays"`
	TeacherID        string   `json:"teacher_id"`
	BatchID          string   `json:"batch_id"`
}

// RecognizedEntryRequest is one raw recognized cell in an import payload.
type RecognizedEntryRequest struct {
	Day        string  `json:"day" validate:"required"`
	Period     int     `json:"period" validate:"required,min=1"`
	Subject    string  `json:"subject" validate:"required"`
	Teacher    string  `json:"teacher" validate:"required"`
	Confidence float64 `json:"confidence" validate:"min=0,max=1"`
}

// ImportValidateRequest classifies a recognized batch against a target batch.
type ImportValidateRequest struct {
	BatchID string                   `json:"batch_id" validate:"required"`
	Entries []RecognizedEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// ImportCommitRequest commits a previously validated batch.
type ImportCommitRequest struct {
	BatchID             string                   `json:"batch_id" validate:"required"`
	Entries             []RecognizedEntryRequest `json:"entries" validate:"required,min=1,dive"`
	AcknowledgeWarnings bool                     `json:"acknowledge_warnings"`
}

// WorkspaceState is returned after every call so the presentation layer can
// re-render the grid and conflict badges.
type WorkspaceState struct {
	Entries         []models.TimetableEntry `json:"entries"`
	Conflicts       []models.Conflict       `json:"conflicts"`
	CanUndo         bool                    `json:"can_undo"`
	CanRedo         bool                    `json:"can_redo"`
	UndoDepth       int                     `json:"undo_depth"`
	UndoDescription string                  `json:"undo_description,omitempty"`
	RedoDescription string                  `json:"redo_description,omitempty"`
	PendingDrop     *workspace.PendingDrop  `json:"pending_drop,omitempty"`
}

// AssignResponse is the outcome of a placement: a committed entry or a
// pending drop awaiting batch selection.
type AssignResponse struct {
	Entry             *models.TimetableEntry `json:"entry,omitempty"`
	RequiresSelection bool                   `json:"requires_selection"`
	State             WorkspaceState         `json:"state"`
}

// MutationResponse wraps any other state-changing call.
type MutationResponse struct {
	Entry *models.TimetableEntry `json:"entry,omitempty"`
	State WorkspaceState         `json:"state"`
}

// HistoryResponse reports an undo/redo outcome.
type HistoryResponse struct {
	Applied bool           `json:"applied"`
	State   WorkspaceState `json:"state"`
}

// PropagateResponse reports a week-copy run.
type PropagateResponse struct {
	Copied int                  `json:"copied"`
	Weeks  []workspace.WeekCopy `json:"weeks"`
}

// ImportCommitFailure records one entry the protocol rejected at commit time.
type ImportCommitFailure struct {
	EntryIndex int    `json:"entry_index"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// ImportCommitResponse reports the commit outcome.
type ImportCommitResponse struct {
	Committed int                   `json:"committed"`
	Failures  []ImportCommitFailure `json:"failures,omitempty"`
	State     WorkspaceState        `json:"state"`
}
