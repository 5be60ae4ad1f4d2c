package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/repository"
	"github.com/Vedant491/college-fees-api/pkg/config"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
	"github.com/Vedant491/college-fees-api/pkg/export"
)

type receiptRepository interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	ExistsForPayment(ctx context.Context, paymentID string) (bool, error)
	FindDocumentByNumber(ctx context.Context, number string) (*models.ReceiptDocument, error)
}

type paymentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Payment, error)
}

// NewReceiptNumber generates an unguessable receipt number. The number doubles
// as the public lookup key for printable receipts, so it must not be
// sequential.
func NewReceiptNumber() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("RCPT-%d", time.Now().UnixNano())
	}
	return "RCPT-" + strings.ToUpper(hex.EncodeToString(buf))
}

// ReceiptService issues receipts and resolves printable documents.
type ReceiptService struct {
	repo        receiptRepository
	payments    paymentFinder
	pdf         *export.ReceiptPDFExporter
	institution config.InstitutionConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewReceiptService constructs the receipt service.
func NewReceiptService(repo receiptRepository, payments paymentFinder, institution config.InstitutionConfig, logger *zap.Logger) *ReceiptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptService{
		repo:        repo,
		payments:    payments,
		pdf:         export.NewReceiptPDFExporter(),
		institution: institution,
		logger:      logger,
		now:         time.Now,
	}
}

// Issue back-fills a receipt for an existing Completed payment. Receipts model
// completed transactions, so Pending/Failed/Refunded payments are rejected.
func (s *ReceiptService) Issue(ctx context.Context, paymentID string) (*models.Receipt, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "payment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment")
	}
	if payment.Status != models.StatusCompleted {
		return nil, appErrors.Clone(appErrors.ErrValidation, "receipts are only issued for completed payments")
	}
	exists, err := s.repo.ExistsForPayment(ctx, paymentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing receipt")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "receipt already issued for this payment")
	}

	receipt := &models.Receipt{
		ReceiptNumber: NewReceiptNumber(),
		PaymentID:     paymentID,
		GeneratedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, receipt); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "receipt already issued for this payment")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create receipt")
	}
	return receipt, nil
}

// Get resolves the printable document for a receipt number.
func (s *ReceiptService) Get(ctx context.Context, number string) (*models.ReceiptDocument, error) {
	if number == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "receipt number is required")
	}
	doc, err := s.repo.FindDocumentByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "receipt not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load receipt")
	}
	doc.AmountInWords = AmountInWords(doc.AmountPaid)
	return doc, nil
}

// RenderPDF produces the fixed-layout printable receipt.
func (s *ReceiptService) RenderPDF(ctx context.Context, number string) ([]byte, error) {
	doc, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	data, err := s.pdf.Render(export.Letterhead{
		Name:    s.institution.Name,
		Address: s.institution.Address,
		Phone:   s.institution.Phone,
		Email:   s.institution.Email,
	}, doc)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt")
	}
	return data, nil
}
