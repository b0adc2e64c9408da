package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// HolidayRepository manages the holiday calendar consumed by the week
// propagator.
type HolidayRepository struct {
	db *sqlx.DB
}

// NewHolidayRepository constructs a HolidayRepository.
func NewHolidayRepository(db *sqlx.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// List returns all holidays ordered by date.
func (r *HolidayRepository) List(ctx context.Context) ([]models.Holiday, error) {
	var holidays []models.Holiday
	if err := r.db.SelectContext(ctx, &holidays, "SELECT id, date, name FROM holidays ORDER BY date ASC"); err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	return holidays, nil
}

// ListBetween returns holidays within [from, to] inclusive.
func (r *HolidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Holiday, error) {
	var holidays []models.Holiday
	query := "SELECT id, date, name FROM holidays WHERE date >= $1 AND date <= $2 ORDER BY date ASC"
	if err := r.db.SelectContext(ctx, &holidays, query, from, to); err != nil {
		return nil, fmt.Errorf("list holidays between: %w", err)
	}
	return holidays, nil
}

// Create inserts a holiday.
func (r *HolidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	if holiday.ID == "" {
		holiday.ID = uuid.NewString()
	}
	query := "INSERT INTO holidays (id, date, name) VALUES ($1, $2, $3)"
	if _, err := r.db.ExecContext(ctx, query, holiday.ID, holiday.Date, holiday.Name); err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}
	return nil
}

// Delete removes a holiday by id.
func (r *HolidayRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	return nil
}
