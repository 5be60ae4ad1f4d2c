package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/repository"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id string) (*models.Course, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListSummaries(ctx context.Context) ([]models.CourseSummary, error)
}

// CreateCourseRequest holds payload for creating courses.
type CreateCourseRequest struct {
	Name          string  `json:"name" validate:"required"`
	DurationYears int     `json:"duration_years" validate:"required,min=1,max=6"`
	TotalFees     float64 `json:"total_fees" validate:"required,gt=0"`
}

// CourseService handles course catalog use-cases.
type CourseService struct {
	repo      courseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create adds a course to the catalog.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate course name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "course name already exists")
	}
	course := &models.Course{
		Name:          req.Name,
		DurationYears: req.DurationYears,
		TotalFees:     req.TotalFees,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, "course name already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return course, nil
}

// List returns the catalog with enrollment and collection figures.
func (s *CourseService) List(ctx context.Context) ([]models.CourseSummary, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return summaries, nil
}
