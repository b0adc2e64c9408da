package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

// RosterService exposes the read-only teacher/batch roster the sidebar
// renders and drags from.
type RosterService struct {
	repo      rosterRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRosterService builds the service.
func NewRosterService(repo rosterRepository, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{repo: repo, validator: validate, logger: logger}
}

// ListTeacherLoads returns teacher loads matching the filter with pagination
// metadata.
func (s *RosterService) ListTeacherLoads(ctx context.Context, filter models.TeacherLoadFilter) ([]models.TeacherLoad, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	loads, total, err := s.repo.ListTeacherLoads(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teacher loads")
	}
	return loads, &models.Pagination{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	}, nil
}

// GetTeacherLoad returns one teacher's load.
func (s *RosterService) GetTeacherLoad(ctx context.Context, teacherID string) (*models.TeacherLoad, error) {
	if teacherID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacher id is required")
	}
	load, err := s.repo.FindTeacherLoad(ctx, teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return load, nil
}
