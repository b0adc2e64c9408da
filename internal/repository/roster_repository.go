package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// RosterRepository reads the teacher/batch/subject roster the workspace
// validates against. The workspace core never writes roster data.
type RosterRepository struct {
	db *sqlx.DB
}

// NewRosterRepository constructs a RosterRepository.
func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

type teacherRow struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	WorkingDays string `db:"working_days"`
}

// ListTeacherLoads returns teacher loads matching the filter plus the total
// count, with allowed batches attached in roster order.
func (r *RosterRepository) ListTeacherLoads(ctx context.Context, filter models.TeacherLoadFilter) ([]models.TeacherLoad, int, error) {
	base := "FROM teachers WHERE active = TRUE"
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(full_name) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.BatchID != "" {
		conditions = append(conditions, fmt.Sprintf("id IN (SELECT teacher_id FROM teacher_batches WHERE batch_id = $%d)", len(args)+1))
		args = append(args, filter.BatchID)
	}
	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, full_name, working_days %s ORDER BY full_name ASC LIMIT %d OFFSET %d", base, size, offset)
	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list teacher loads: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count teacher loads: %w", err)
	}

	loads := make([]models.TeacherLoad, 0, len(rows))
	for _, row := range rows {
		load, err := r.assembleLoad(ctx, row)
		if err != nil {
			return nil, 0, err
		}
		loads = append(loads, load)
	}
	return loads, total, nil
}

// AllTeacherLoads returns every active teacher's load, unpaginated. Import
// validation matches recognized names against the full roster.
func (r *RosterRepository) AllTeacherLoads(ctx context.Context) ([]models.TeacherLoad, error) {
	query := "SELECT id, full_name, working_days FROM teachers WHERE active = TRUE ORDER BY full_name ASC"
	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("all teacher loads: %w", err)
	}

	loads := make([]models.TeacherLoad, 0, len(rows))
	for _, row := range rows {
		load, err := r.assembleLoad(ctx, row)
		if err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	return loads, nil
}

// FindTeacherLoad returns one teacher's load by id.
func (r *RosterRepository) FindTeacherLoad(ctx context.Context, teacherID string) (*models.TeacherLoad, error) {
	var row teacherRow
	query := "SELECT id, full_name, working_days FROM teachers WHERE id = $1 AND active = TRUE"
	if err := r.db.GetContext(ctx, &row, query, teacherID); err != nil {
		return nil, fmt.Errorf("find teacher load: %w", err)
	}
	load, err := r.assembleLoad(ctx, row)
	if err != nil {
		return nil, err
	}
	return &load, nil
}

// FindBatch returns one batch by id.
func (r *RosterRepository) FindBatch(ctx context.Context, batchID string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.GetContext(ctx, &batch, "SELECT id, name FROM batches WHERE id = $1", batchID); err != nil {
		return nil, fmt.Errorf("find batch: %w", err)
	}
	return &batch, nil
}

// ListBatchSubjects returns the curriculum of one batch.
func (r *RosterRepository) ListBatchSubjects(ctx context.Context, batchID string) ([]models.Subject, error) {
	query := "SELECT s.id, s.name FROM subjects s JOIN batch_subjects bs ON bs.subject_id = s.id WHERE bs.batch_id = $1 ORDER BY s.name ASC"
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, batchID); err != nil {
		return nil, fmt.Errorf("list batch subjects: %w", err)
	}
	return subjects, nil
}

func (r *RosterRepository) assembleLoad(ctx context.Context, row teacherRow) (models.TeacherLoad, error) {
	query := "SELECT batch_id, batch_name, subject_id, subject_name FROM teacher_batches WHERE teacher_id = $1 ORDER BY position ASC"
	var batches []models.AllowedBatch
	if err := r.db.SelectContext(ctx, &batches, query, row.ID); err != nil {
		return models.TeacherLoad{}, fmt.Errorf("list allowed batches: %w", err)
	}
	return models.TeacherLoad{
		TeacherID:      row.ID,
		TeacherName:    row.FullName,
		WorkingDays:    parseWorkingDays(row.WorkingDays),
		AllowedBatches: batches,
	}, nil
}

func parseWorkingDays(raw string) []models.Weekday {
	parts := strings.Split(raw, ",")
	days := make([]models.Weekday, 0, len(parts))
	for _, part := range parts {
		if day, ok := models.ParseWeekday(part); ok {
			days = append(days, day)
		}
	}
	return days
}
