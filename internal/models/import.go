package models

// RecognizedEntry is one raw timetable cell produced by the recognition
// collaborator (OCR or similar), before validation.
type RecognizedEntry struct {
	Day        Weekday `json:"day"`
	Period     int     `json:"period"`
	Subject    string  `json:"subject"`
	Teacher    string  `json:"teacher"`
	Confidence float64 `json:"confidence"`
}

// ImportSeverity distinguishes blocking errors from acknowledgeable warnings.
type ImportSeverity string

const (
	SeverityError   ImportSeverity = "error"
	SeverityWarning ImportSeverity = "warning"
)

// ImportIssueCode enumerates validation outcomes.
type ImportIssueCode string

const (
	IssueTeacherNotFound    ImportIssueCode = "teacher_not_found"
	IssueTeacherNotAssigned ImportIssueCode = "teacher_not_assigned"
	IssueSubjectNotInBatch  ImportIssueCode = "subject_not_in_batch"
	IssueLowConfidence      ImportIssueCode = "low_confidence"
	IssueSlotConflict       ImportIssueCode = "slot_conflict"
)

// ImportIssue is one classified problem with a recognized entry. Issues are
// data, not errors: the whole list is returned so the caller can show every
// problem at once.
type ImportIssue struct {
	EntryIndex int             `json:"entry_index"`
	Code       ImportIssueCode `json:"code"`
	Severity   ImportSeverity  `json:"severity"`
	Message    string          `json:"message"`
}

// ImportResolution records how a recognized entry's free-text fields mapped
// onto the roster. Only present for entries without resolution errors.
type ImportResolution struct {
	EntryIndex int    `json:"entry_index"`
	TeacherID  string `json:"teacher_id"`
	SubjectID  string `json:"subject_id"`
}

// ImportReport is the validator's full classification of one import batch.
type ImportReport struct {
	Entries      []RecognizedEntry  `json:"entries"`
	Issues       []ImportIssue      `json:"issues"`
	Resolutions  []ImportResolution `json:"resolutions"`
	ErrorCount   int                `json:"error_count"`
	WarningCount int                `json:"warning_count"`
	CanCommit    bool               `json:"can_commit"`
}
