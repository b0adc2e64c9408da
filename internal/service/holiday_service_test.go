package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

type holidayRepoMock struct {
	items []models.Holiday
}

func (m *holidayRepoMock) List(ctx context.Context) ([]models.Holiday, error) {
	return m.items, nil
}

func (m *holidayRepoMock) ListBetween(ctx context.Context, from, to time.Time) ([]models.Holiday, error) {
	var matched []models.Holiday
	for _, h := range m.items {
		if !h.Date.Before(from) && !h.Date.After(to) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (m *holidayRepoMock) Create(ctx context.Context, holiday *models.Holiday) error {
	holiday.ID = uuid.NewString()
	m.items = append(m.items, *holiday)
	return nil
}

func (m *holidayRepoMock) Delete(ctx context.Context, id string) error {
	for i, h := range m.items {
		if h.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestHolidayServiceListRange(t *testing.T) {
	repo := &holidayRepoMock{items: []models.Holiday{
		{ID: "h1", Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), Name: "Founders Day"},
		{ID: "h2", Date: time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), Name: "Christmas"},
	}}
	svc := NewHolidayService(repo, validator.New(), zap.NewNop())

	holidays, err := svc.List(context.Background(), "2026-09-01", "2026-09-30")
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "h1", holidays[0].ID)

	all, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestHolidayServiceListRejectsBadRange(t *testing.T) {
	svc := NewHolidayService(&holidayRepoMock{}, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), "September 7", "2026-09-30")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestHolidayServiceCreate(t *testing.T) {
	repo := &holidayRepoMock{}
	svc := NewHolidayService(repo, validator.New(), zap.NewNop())

	holiday, err := svc.Create(context.Background(), CreateHolidayRequest{Date: "2026-10-02", Name: "Gandhi Jayanti"})
	require.NoError(t, err)
	assert.NotEmpty(t, holiday.ID)
	assert.Len(t, repo.items, 1)

	_, err = svc.Create(context.Background(), CreateHolidayRequest{Date: "", Name: "Nameless"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestHolidayServiceDeleteRequiresID(t *testing.T) {
	svc := NewHolidayService(&holidayRepoMock{}, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}
