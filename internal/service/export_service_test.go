package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/dto"
	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

type stateReaderMock struct {
	state dto.WorkspaceState
}

func (m *stateReaderMock) State(ctx context.Context, workspaceID string) (*dto.WorkspaceState, error) {
	cp := m.state
	return &cp, nil
}

func exportFixture() *stateReaderMock {
	return &stateReaderMock{state: dto.WorkspaceState{
		Entries: []models.TimetableEntry{
			{ID: "e1", Day: models.Monday, Period: 1, SubjectName: "Mathematics", TeacherName: "Asha Verma", BatchID: "b1", BatchName: "Grade 8A"},
			{ID: "e2", Day: models.Tuesday, Period: 2, SubjectName: "Physics", TeacherName: "Ravi Iyer", BatchID: "b2", BatchName: "Grade 8B"},
		},
	}}
}

func TestExportServiceTimetableCSV(t *testing.T) {
	svc := NewExportService(exportFixture(), "Springfield High", zap.NewNop())

	payload, err := svc.TimetableCSV(context.Background(), "ws-1", "")
	require.NoError(t, err)

	content := string(payload)
	assert.Contains(t, content, "Period,MONDAY,TUESDAY")
	assert.Contains(t, content, "Grade 8A: Mathematics (Asha Verma)")
	assert.Contains(t, content, "Grade 8B: Physics (Ravi Iyer)")
}

func TestExportServiceCSVBatchFilter(t *testing.T) {
	svc := NewExportService(exportFixture(), "", zap.NewNop())

	payload, err := svc.TimetableCSV(context.Background(), "ws-1", "b1")
	require.NoError(t, err)

	content := string(payload)
	assert.Contains(t, content, "Mathematics (Asha Verma)")
	assert.NotContains(t, content, "Physics")
}

func TestExportServiceTimetablePDF(t *testing.T) {
	svc := NewExportService(exportFixture(), "Springfield High", zap.NewNop())

	payload, err := svc.TimetablePDF(context.Background(), "ws-1", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestExportServicePDFEmptyWorkspace(t *testing.T) {
	svc := NewExportService(&stateReaderMock{}, "", zap.NewNop())

	payload, err := svc.TimetablePDF(context.Background(), "ws-1", "")
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}
