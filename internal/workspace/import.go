package workspace

import (
	"fmt"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	"github.com/suryakamal494/timetable-workspace-api/pkg/match"
)

// ConfidenceThreshold is the recognizer score below which an entry is
// flagged low_confidence.
const ConfidenceThreshold = 0.8

// ImportContext is the roster slice an import batch is validated against:
// the target batch, its curriculum and the teacher loads.
type ImportContext struct {
	BatchID   string
	BatchName string
	Teachers  []models.TeacherLoad
	Subjects  []models.Subject
}

// ImportValidator reconciles recognized entries against the roster. It is a
// pure classification pass: it never mutates the roster or a grid, and all
// problems are returned as data so the caller can surface them together.
type ImportValidator struct {
	matcher match.Matcher
}

// NewImportValidator builds a validator around a name-matching strategy.
func NewImportValidator(matcher match.Matcher) *ImportValidator {
	if matcher == nil {
		matcher = match.NewNameMatcher()
	}
	return &ImportValidator{matcher: matcher}
}

// Validate classifies every entry in the batch. Any error blocks commit;
// warnings alone leave CanCommit true, with acknowledgment handled by the
// commit step.
func (v *ImportValidator) Validate(entries []models.RecognizedEntry, rc ImportContext) models.ImportReport {
	report := models.ImportReport{Entries: entries}

	slotGroups := make(map[models.Slot][]int)
	for i, entry := range entries {
		slotGroups[models.Slot{Day: entry.Day, Period: entry.Period}] = append(slotGroups[models.Slot{Day: entry.Day, Period: entry.Period}], i)
	}

	for i, entry := range entries {
		teacher, teacherFound := v.resolveTeacher(entry.Teacher, rc.Teachers)
		subject, subjectFound := v.resolveSubject(entry.Subject, rc.Subjects)

		resolved := true
		if !teacherFound {
			resolved = false
			report.Issues = append(report.Issues, models.ImportIssue{
				EntryIndex: i,
				Code:       models.IssueTeacherNotFound,
				Severity:   models.SeverityError,
				Message:    fmt.Sprintf("no roster teacher matches %q", entry.Teacher),
			})
		} else if _, authorized := teacher.BatchByID(rc.BatchID); !authorized {
			resolved = false
			report.Issues = append(report.Issues, models.ImportIssue{
				EntryIndex: i,
				Code:       models.IssueTeacherNotAssigned,
				Severity:   models.SeverityError,
				Message:    fmt.Sprintf("%s is not assigned to %s", teacher.TeacherName, rc.BatchName),
			})
		}
		if !subjectFound {
			resolved = false
			report.Issues = append(report.Issues, models.ImportIssue{
				EntryIndex: i,
				Code:       models.IssueSubjectNotInBatch,
				Severity:   models.SeverityError,
				Message:    fmt.Sprintf("%q is not part of the %s curriculum", entry.Subject, rc.BatchName),
			})
		}

		// confidence is checked independently of resolution outcomes
		if entry.Confidence < ConfidenceThreshold {
			report.Issues = append(report.Issues, models.ImportIssue{
				EntryIndex: i,
				Code:       models.IssueLowConfidence,
				Severity:   models.SeverityWarning,
				Message:    fmt.Sprintf("recognition confidence %.2f below %.2f", entry.Confidence, ConfidenceThreshold),
			})
		}

		if resolved {
			report.Resolutions = append(report.Resolutions, models.ImportResolution{
				EntryIndex: i,
				TeacherID:  teacher.TeacherID,
				SubjectID:  subject.ID,
			})
		}
	}

	// every member of an internal slot collision is flagged, not just the
	// later arrivals
	for slot, indices := range slotGroups {
		if len(indices) < 2 {
			continue
		}
		for _, i := range indices {
			report.Issues = append(report.Issues, models.ImportIssue{
				EntryIndex: i,
				Code:       models.IssueSlotConflict,
				Severity:   models.SeverityWarning,
				Message:    fmt.Sprintf("%d entries target %s period %d in this batch", len(indices), slot.Day, slot.Period),
			})
		}
	}

	for _, issue := range report.Issues {
		if issue.Severity == models.SeverityError {
			report.ErrorCount++
		} else {
			report.WarningCount++
		}
	}
	report.CanCommit = report.ErrorCount == 0
	return report
}

func (v *ImportValidator) resolveTeacher(name string, teachers []models.TeacherLoad) (models.TeacherLoad, bool) {
	for _, t := range teachers {
		if v.matcher.Match(name, t.TeacherName) {
			return t, true
		}
	}
	return models.TeacherLoad{}, false
}

func (v *ImportValidator) resolveSubject(name string, subjects []models.Subject) (models.Subject, bool) {
	for _, s := range subjects {
		if v.matcher.Match(name, s.Name) {
			return s, true
		}
	}
	return models.Subject{}, false
}
