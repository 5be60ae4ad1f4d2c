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

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO students (id, name, email, phone, course_id, admission_year, created_at)
        VALUES (:id, :name, :email, :phone, :course_id, :admission_year, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, name, email, phone, course_id, admission_year, created_at FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByEmail checks whether a student with the given email exists.
// Comparison is case-sensitive, matching how emails are stored.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM students WHERE email = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// ListLedgers returns every student with course fees, the sum of their
// Completed payments and the resulting balance, newest students first.
// Balance may go negative when overpaid; it is reported as computed.
func (r *StudentRepository) ListLedgers(ctx context.Context) ([]models.StudentLedger, error) {
	const query = `SELECT s.id, s.name, s.email, s.phone, c.name AS course_name, s.admission_year,
        c.total_fees,
        COALESCE(SUM(p.amount_paid), 0) AS total_paid,
        c.total_fees - COALESCE(SUM(p.amount_paid), 0) AS balance_due
        FROM students s
        INNER JOIN courses c ON c.id = s.course_id
        LEFT JOIN payments p ON p.student_id = s.id AND p.status = $1
        GROUP BY s.id, s.name, s.email, s.phone, c.name, s.admission_year, c.total_fees, s.created_at
        ORDER BY s.created_at DESC`
	var ledgers []models.StudentLedger
	if err := r.db.SelectContext(ctx, &ledgers, query, models.StatusCompleted); err != nil {
		return nil, fmt.Errorf("list student ledgers: %w", err)
	}
	return ledgers, nil
}
