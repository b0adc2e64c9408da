package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/dto"
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
	"github.com/suryakamal494/timetable-workspace-api/pkg/export"
)

type workspaceStateReader interface {
	State(ctx context.Context, workspaceID string) (*dto.WorkspaceState, error)
}

// ExportService renders a workspace grid as a printable week table, one
// column per working day, one row per period.
type ExportService struct {
	workspaces workspaceStateReader
	pdf        *export.PDFExporter
	csv        *export.CSVExporter
	schoolName string
	logger     *zap.Logger
}

// NewExportService builds the service.
func NewExportService(workspaces workspaceStateReader, schoolName string, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		workspaces: workspaces,
		pdf:        export.NewPDFExporter(),
		csv:        export.NewCSVExporter(),
		schoolName: schoolName,
		logger:     logger,
	}
}

// TimetablePDF renders the workspace grid to PDF bytes.
func (s *ExportService) TimetablePDF(ctx context.Context, workspaceID, batchID string) ([]byte, error) {
	data, err := s.dataset(ctx, workspaceID, batchID)
	if err != nil {
		return nil, err
	}
	title := "Timetable"
	if s.schoolName != "" {
		title = s.schoolName + " Timetable"
	}
	payload, err := s.pdf.Render(*data, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable pdf")
	}
	return payload, nil
}

// TimetableCSV renders the workspace grid to CSV bytes.
func (s *ExportService) TimetableCSV(ctx context.Context, workspaceID, batchID string) ([]byte, error) {
	data, err := s.dataset(ctx, workspaceID, batchID)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable csv")
	}
	return payload, nil
}

// dataset pivots the entry list into period rows and weekday columns. Slots
// holding more than one entry, which conflict detection will have flagged,
// render all entries separated by " / ".
func (s *ExportService) dataset(ctx context.Context, workspaceID, batchID string) (*export.Dataset, error) {
	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	entries := state.Entries
	if batchID != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.BatchID == batchID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	maxPeriod := 0
	cells := make(map[models.Slot][]string)
	for _, e := range entries {
		if e.Period > maxPeriod {
			maxPeriod = e.Period
		}
		label := fmt.Sprintf("%s (%s)", e.SubjectName, e.TeacherName)
		if batchID == "" {
			label = fmt.Sprintf("%s: %s (%s)", e.BatchName, e.SubjectName, e.TeacherName)
		}
		cells[e.Slot()] = append(cells[e.Slot()], label)
	}

	headers := []string{"Period"}
	for _, day := range models.WorkingWeek {
		headers = append(headers, string(day))
	}

	rows := make([]map[string]string, 0, maxPeriod)
	for period := 1; period <= maxPeriod; period++ {
		row := map[string]string{"Period": strconv.Itoa(period)}
		for _, day := range models.WorkingWeek {
			row[string(day)] = strings.Join(cells[models.Slot{Day: day, Period: period}], " / ")
		}
		rows = append(rows, row)
	}

	return &export.Dataset{Headers: headers, Rows: rows}, nil
}
