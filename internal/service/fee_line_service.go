package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/repository"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type feeLineRepository interface {
	Create(ctx context.Context, line *models.FeeLine) error
	FindByID(ctx context.Context, id string) (*models.FeeLine, error)
	Exists(ctx context.Context, courseID string, semester int) (bool, error)
	List(ctx context.Context, courseID string) ([]models.FeeLineDetail, error)
}

type studentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// CreateFeeLineRequest holds payload for defining a semester fee.
type CreateFeeLineRequest struct {
	CourseID    string  `json:"course_id" validate:"required"`
	Semester    int     `json:"semester" validate:"required,min=1,max=12"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// FeeLineService handles fee schedule use-cases.
type FeeLineService struct {
	repo      feeLineRepository
	courses   courseRepository
	students  studentFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeeLineService constructs the fee line service.
func NewFeeLineService(repo feeLineRepository, courses courseRepository, students studentFinder, validate *validator.Validate, logger *zap.Logger) *FeeLineService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeLineService{repo: repo, courses: courses, students: students, validator: validate, logger: logger}
}

// Create defines the fee for one semester of a course. A second line for the
// same (course, semester) is rejected and leaves the original untouched.
func (s *FeeLineService) Create(ctx context.Context, req CreateFeeLineRequest) (*models.FeeLine, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid fee line payload")
	}
	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	exists, err := s.repo.Exists(ctx, req.CourseID, req.Semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate fee line")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "fee line already exists for this course and semester")
	}
	line := &models.FeeLine{
		CourseID:    req.CourseID,
		Semester:    req.Semester,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, line); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, "fee line already exists for this course and semester")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create fee line")
	}
	return line, nil
}

// List returns fee lines, optionally restricted to one course.
func (s *FeeLineService) List(ctx context.Context, courseID string) ([]models.FeeLineDetail, error) {
	lines, err := s.repo.List(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fee lines")
	}
	return lines, nil
}

// ListForStudent returns the fee schedule of the student's enrolled course.
func (s *FeeLineService) ListForStudent(ctx context.Context, studentID string) ([]models.FeeLineDetail, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return s.List(ctx, student.CourseID)
}
