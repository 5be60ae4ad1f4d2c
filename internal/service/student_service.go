package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/repository"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListLedgers(ctx context.Context) ([]models.StudentLedger, error)
}

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// Admissions before this year are not accepted.
const minAdmissionYear = 2020

// CreateStudentRequest holds payload for registering students.
type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	CourseID      string `json:"course_id" validate:"required"`
	AdmissionYear int    `json:"admission_year" validate:"required"`
}

// StudentLedgerReport combines per-student ledgers with collection totals.
type StudentLedgerReport struct {
	Students []models.StudentLedger `json:"students"`
	Summary  models.LedgerSummary   `json:"summary"`
}

// StudentService handles student registration and the fee ledger.
type StudentService struct {
	repo      studentRepository
	courses   courseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, courses courseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, courses: courses, cache: cache, validator: validate, logger: logger, now: time.Now}
}

// Create registers a new student on a course.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "phone number must be 10-15 digits")
	}
	if year := s.now().Year(); req.AdmissionYear < minAdmissionYear || req.AdmissionYear > year {
		return nil, appErrors.Clone(appErrors.ErrValidation, "admission year out of range")
	}
	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "email already exists")
	}
	student := &models.Student{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CourseID:      req.CourseID,
		AdmissionYear: req.AdmissionYear,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, "email already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return student, nil
}

// FindByID fetches a single student.
func (s *StudentService) FindByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Ledger returns every student's fee position plus collection totals.
func (s *StudentService) Ledger(ctx context.Context) (*StudentLedgerReport, error) {
	ledgers, err := s.repo.ListLedgers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student ledgers")
	}

	var summary models.LedgerSummary
	for i := range ledgers {
		ledgers[i].Status = LedgerStatus(ledgers[i].TotalPaid, ledgers[i].TotalFees)
		summary.ExpectedRevenue += ledgers[i].TotalFees
		summary.Collected += ledgers[i].TotalPaid
		summary.Pending += ledgers[i].BalanceDue
	}
	summary.TotalStudents = len(ledgers)
	if summary.ExpectedRevenue > 0 {
		summary.CollectionRate = summary.Collected / summary.ExpectedRevenue * 100
	}

	return &StudentLedgerReport{Students: ledgers, Summary: summary}, nil
}
