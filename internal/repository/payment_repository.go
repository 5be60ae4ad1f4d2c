package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Vedant491/college-fees-api/internal/models"
)

// PaymentRepository manages persistence for payment records.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const insertPaymentQuery = `INSERT INTO payments (id, student_id, fee_id, payment_date, amount_paid, mode, status, transaction_id, remarks, created_at)
        VALUES (:id, :student_id, :fee_id, :payment_date, :amount_paid, :mode, :status, :transaction_id, :remarks, :created_at)`

const insertReceiptQuery = `INSERT INTO receipts (id, receipt_number, payment_id, generated_at)
        VALUES (:id, :receipt_number, :payment_id, :generated_at)`

func preparePayment(payment *models.Payment) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
}

// Create inserts a payment without an accompanying receipt.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	preparePayment(payment)
	if _, err := r.db.NamedExecContext(ctx, insertPaymentQuery, payment); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// CreateWithReceipt inserts a payment and its receipt in one transaction.
// Used for Completed payments so a recorded payment can never exist without
// its proof-of-payment.
func (r *PaymentRepository) CreateWithReceipt(ctx context.Context, payment *models.Payment, receipt *models.Receipt) error {
	preparePayment(payment)
	receipt.PaymentID = payment.ID

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin payment tx: %w", err)
	}
	if _, err := tx.NamedExecContext(ctx, insertPaymentQuery, payment); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create payment: %w", err)
	}
	if _, err := tx.NamedExecContext(ctx, insertReceiptQuery, receipt); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create receipt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit payment tx: %w", err)
	}
	return nil
}

// FindByID fetches a payment by ID.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	const query = `SELECT id, student_id, fee_id, payment_date, amount_paid, mode, status, transaction_id, remarks, created_at
        FROM payments WHERE id = $1`
	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns payments joined with student, course and receipt context,
// optionally filtered by status and/or mode, ordered by payment date then id
// descending.
func (r *PaymentRepository) List(ctx context.Context, filter models.PaymentFilter) ([]models.PaymentDetail, error) {
	query := `SELECT p.id, p.student_id, p.fee_id, p.payment_date, p.amount_paid, p.mode, p.status, p.transaction_id, p.remarks, p.created_at,
        s.name AS student_name, s.email AS student_email, c.name AS course_name, f.semester, r.receipt_number
        FROM payments p
        INNER JOIN students s ON s.id = p.student_id
        INNER JOIN fees_structure f ON f.id = p.fee_id
        INNER JOIN courses c ON c.id = f.course_id
        LEFT JOIN receipts r ON r.payment_id = p.id`
	conditions := []string{}
	args := []interface{}{}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Mode != "" {
		conditions = append(conditions, fmt.Sprintf("p.mode = $%d", len(args)+1))
		args = append(args, filter.Mode)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.payment_date DESC, p.id DESC"

	var payments []models.PaymentDetail
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// Recent returns the latest payments by payment date for the dashboard.
func (r *PaymentRepository) Recent(ctx context.Context, limit int) ([]models.PaymentDetail, error) {
	const query = `SELECT p.id, p.student_id, p.fee_id, p.payment_date, p.amount_paid, p.mode, p.status, p.transaction_id, p.remarks, p.created_at,
        s.name AS student_name, s.email AS student_email, c.name AS course_name, f.semester, r.receipt_number
        FROM payments p
        INNER JOIN students s ON s.id = p.student_id
        INNER JOIN fees_structure f ON f.id = p.fee_id
        INNER JOIN courses c ON c.id = f.course_id
        LEFT JOIN receipts r ON r.payment_id = p.id
        ORDER BY p.payment_date DESC, p.id DESC
        LIMIT $1`
	var payments []models.PaymentDetail
	if err := r.db.SelectContext(ctx, &payments, query, limit); err != nil {
		return nil, fmt.Errorf("recent payments: %w", err)
	}
	return payments, nil
}

// Stats aggregates the payment table. Amount figures count Completed payments
// only; the average is zero when nothing has completed yet.
func (r *PaymentRepository) Stats(ctx context.Context) (*models.PaymentStats, error) {
	const query = `SELECT
        COUNT(*) AS total_payments,
        COALESCE(SUM(CASE WHEN status = $1 THEN 1 ELSE 0 END), 0) AS completed,
        COALESCE(SUM(CASE WHEN status = $2 THEN 1 ELSE 0 END), 0) AS pending,
        COALESCE(SUM(CASE WHEN status = $1 THEN amount_paid ELSE 0 END), 0) AS total_amount,
        COALESCE(AVG(CASE WHEN status = $1 THEN amount_paid ELSE NULL END), 0) AS avg_amount
        FROM payments`
	var stats models.PaymentStats
	if err := r.db.GetContext(ctx, &stats, query, models.StatusCompleted, models.StatusPending); err != nil {
		return nil, fmt.Errorf("payment stats: %w", err)
	}
	return &stats, nil
}

// ModeBreakdown returns transaction count and total per payment mode over
// Completed payments, highest total first.
func (r *PaymentRepository) ModeBreakdown(ctx context.Context) ([]models.ModeStats, error) {
	const query = `SELECT mode, COUNT(*) AS count, COALESCE(SUM(amount_paid), 0) AS total
        FROM payments
        WHERE status = $1
        GROUP BY mode
        ORDER BY total DESC`
	var breakdown []models.ModeStats
	if err := r.db.SelectContext(ctx, &breakdown, query, models.StatusCompleted); err != nil {
		return nil, fmt.Errorf("mode breakdown: %w", err)
	}
	return breakdown, nil
}
