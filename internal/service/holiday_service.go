package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
	appErrors "github.com/suryakamal494/timetable-workspace-api/pkg/errors"
)

type holidayRepository interface {
	List(ctx context.Context) ([]models.Holiday, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Holiday, error)
	Create(ctx context.Context, holiday *models.Holiday) error
	Delete(ctx context.Context, id string) error
}

// CreateHolidayRequest captures a new non-teaching date.
type CreateHolidayRequest struct {
	Date string `json:"date" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// HolidayService manages the holiday calendar week propagation consults.
type HolidayService struct {
	repo      holidayRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHolidayService builds the service.
func NewHolidayService(repo holidayRepository, validate *validator.Validate, logger *zap.Logger) *HolidayService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{repo: repo, validator: validate, logger: logger}
}

// List returns every holiday, or only those in [from, to] when both are set.
func (s *HolidayService) List(ctx context.Context, from, to string) ([]models.Holiday, error) {
	if from != "" && to != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid from date, want YYYY-MM-DD")
		}
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid to date, want YYYY-MM-DD")
		}
		holidays, err := s.repo.ListBetween(ctx, fromDate, toDate)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list holidays")
		}
		return holidays, nil
	}

	holidays, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list holidays")
	}
	return holidays, nil
}

// Create stores a new holiday.
func (s *HolidayService) Create(ctx context.Context, req CreateHolidayRequest) (*models.Holiday, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid holiday payload")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date, want YYYY-MM-DD")
	}

	holiday := &models.Holiday{Date: date, Name: req.Name}
	if err := s.repo.Create(ctx, holiday); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create holiday")
	}
	return holiday, nil
}

// Delete removes a holiday by id.
func (s *HolidayService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "holiday id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete holiday")
	}
	return nil
}
