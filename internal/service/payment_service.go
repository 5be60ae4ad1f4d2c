package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Vedant491/college-fees-api/internal/models"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
	"github.com/Vedant491/college-fees-api/pkg/export"
)

type paymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	CreateWithReceipt(ctx context.Context, payment *models.Payment, receipt *models.Receipt) error
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, filter models.PaymentFilter) ([]models.PaymentDetail, error)
	Stats(ctx context.Context) (*models.PaymentStats, error)
	ModeBreakdown(ctx context.Context) ([]models.ModeStats, error)
}

type feeLineFinder interface {
	FindByID(ctx context.Context, id string) (*models.FeeLine, error)
}

// RecordPaymentRequest holds payload for recording a payment.
type RecordPaymentRequest struct {
	StudentID     string               `json:"student_id" validate:"required"`
	FeeID         string               `json:"fee_id" validate:"required"`
	PaymentDate   time.Time            `json:"payment_date"`
	AmountPaid    float64              `json:"amount_paid" validate:"required,gt=0"`
	Mode          models.PaymentMode   `json:"mode" validate:"required"`
	Status        models.PaymentStatus `json:"status" validate:"required"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	Remarks       *string              `json:"remarks,omitempty"`
}

// RecordPaymentResponse is the created payment plus the receipt number when
// one was issued alongside it.
type RecordPaymentResponse struct {
	Payment       *models.Payment `json:"payment"`
	ReceiptNumber *string         `json:"receipt_number,omitempty"`
}

// PaymentStatsResponse combines table-wide figures with the per-mode split.
type PaymentStatsResponse struct {
	Stats models.PaymentStats `json:"stats"`
	Modes []models.ModeStats  `json:"modes"`
}

// PaymentService records payments and serves payment listings.
type PaymentService struct {
	repo      paymentRepository
	students  studentFinder
	feeLines  feeLineFinder
	cache     *CacheService
	csv       *export.CSVExporter
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService constructs the payment service.
func NewPaymentService(repo paymentRepository, students studentFinder, feeLines feeLineFinder, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		repo:      repo,
		students:  students,
		feeLines:  feeLines,
		cache:     cache,
		csv:       export.NewCSVExporter(),
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Record validates and stores a payment. A Completed payment gets its receipt
// in the same database transaction; any other status records the payment
// alone. The fee line must belong to the paying student's enrolled course.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*RecordPaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	if !models.ValidMode(req.Mode) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown payment mode")
	}
	if !models.ValidStatus(req.Status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown payment status")
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	feeLine, err := s.feeLines.FindByID(ctx, req.FeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "fee line not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee line")
	}
	if feeLine.CourseID != student.CourseID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fee line does not belong to the student's course")
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = s.now().UTC()
	}
	payment := &models.Payment{
		StudentID:     req.StudentID,
		FeeID:         req.FeeID,
		PaymentDate:   paymentDate,
		AmountPaid:    req.AmountPaid,
		Mode:          req.Mode,
		Status:        req.Status,
		TransactionID: req.TransactionID,
		Remarks:       req.Remarks,
	}

	resp := &RecordPaymentResponse{Payment: payment}
	if req.Status == models.StatusCompleted {
		receipt := &models.Receipt{ReceiptNumber: NewReceiptNumber(), GeneratedAt: s.now().UTC()}
		if err := s.repo.CreateWithReceipt(ctx, payment, receipt); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
		}
		resp.ReceiptNumber = &receipt.ReceiptNumber
	} else {
		if err := s.repo.Create(ctx, payment); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
		}
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return resp, nil
}

// List returns payments filtered by status and/or mode.
func (s *PaymentService) List(ctx context.Context, filter models.PaymentFilter) ([]models.PaymentDetail, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown payment status")
	}
	if filter.Mode != "" && !models.ValidMode(filter.Mode) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown payment mode")
	}
	payments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}

// Stats returns payment statistics and the per-mode breakdown.
func (s *PaymentService) Stats(ctx context.Context) (*PaymentStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute payment stats")
	}
	modes, err := s.repo.ModeBreakdown(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute mode breakdown")
	}
	return &PaymentStatsResponse{Stats: *stats, Modes: modes}, nil
}

// ExportCSV renders the filtered payment listing as CSV.
func (s *PaymentService) ExportCSV(ctx context.Context, filter models.PaymentFilter) ([]byte, error) {
	payments, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	headers := []string{"Payment ID", "Student", "Course", "Semester", "Date", "Amount", "Mode", "Status", "Transaction ID", "Receipt"}
	rows := make([]map[string]string, 0, len(payments))
	for _, p := range payments {
		row := map[string]string{
			"Payment ID": p.ID,
			"Student":    p.StudentName,
			"Course":     p.CourseName,
			"Semester":   fmt.Sprintf("%d", p.Semester),
			"Date":       p.PaymentDate.Format("2006-01-02"),
			"Amount":     fmt.Sprintf("%.2f", p.AmountPaid),
			"Mode":       string(p.Mode),
			"Status":     string(p.Status),
		}
		if p.TransactionID != nil {
			row["Transaction ID"] = *p.TransactionID
		}
		if p.ReceiptNumber != nil {
			row["Receipt"] = *p.ReceiptNumber
		}
		rows = append(rows, row)
	}
	data, err := s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export payments")
	}
	return data, nil
}
