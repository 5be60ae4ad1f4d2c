package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Vedant491/college-fees-api/internal/models"
)

// ReceiptRepository manages persistence for payment receipts.
type ReceiptRepository struct {
	db *sqlx.DB
}

// NewReceiptRepository constructs a ReceiptRepository.
func NewReceiptRepository(db *sqlx.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// Create inserts a receipt for an existing payment.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.NewString()
	}
	if receipt.GeneratedAt.IsZero() {
		receipt.GeneratedAt = time.Now().UTC()
	}
	const query = `INSERT INTO receipts (id, receipt_number, payment_id, generated_at)
        VALUES (:id, :receipt_number, :payment_id, :generated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, receipt); err != nil {
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

// ExistsForPayment checks whether the payment already has a receipt.
func (r *ReceiptRepository) ExistsForPayment(ctx context.Context, paymentID string) (bool, error) {
	const query = `SELECT 1 FROM receipts WHERE payment_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, paymentID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check receipt: %w", err)
	}
	return true, nil
}

// FindDocumentByNumber resolves the full printable document for a receipt
// number: receipt -> payment -> student -> fee line -> course.
func (r *ReceiptRepository) FindDocumentByNumber(ctx context.Context, number string) (*models.ReceiptDocument, error) {
	const query = `SELECT
        rc.receipt_number, rc.generated_at,
        p.id AS payment_id, p.payment_date, p.amount_paid, p.mode, p.transaction_id, p.remarks,
        s.id AS student_id, s.name AS student_name, s.email AS student_email, s.phone AS student_phone,
        c.name AS course_name, c.duration_years,
        f.semester, f.amount AS semester_fee, f.description AS fee_description
        FROM receipts rc
        INNER JOIN payments p ON p.id = rc.payment_id
        INNER JOIN students s ON s.id = p.student_id
        INNER JOIN fees_structure f ON f.id = p.fee_id
        INNER JOIN courses c ON c.id = f.course_id
        WHERE rc.receipt_number = $1`
	var doc models.ReceiptDocument
	if err := r.db.GetContext(ctx, &doc, query, number); err != nil {
		return nil, err
	}
	return &doc, nil
}
