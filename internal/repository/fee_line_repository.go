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

// FeeLineRepository manages persistence for per-semester fee schedules.
type FeeLineRepository struct {
	db *sqlx.DB
}

// NewFeeLineRepository constructs a FeeLineRepository.
func NewFeeLineRepository(db *sqlx.DB) *FeeLineRepository {
	return &FeeLineRepository{db: db}
}

// Create inserts a new fee line.
func (r *FeeLineRepository) Create(ctx context.Context, line *models.FeeLine) error {
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	if line.CreatedAt.IsZero() {
		line.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO fees_structure (id, course_id, semester, amount, description, created_at)
        VALUES (:id, :course_id, :semester, :amount, :description, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, line); err != nil {
		return fmt.Errorf("create fee line: %w", err)
	}
	return nil
}

// FindByID fetches a fee line by ID.
func (r *FeeLineRepository) FindByID(ctx context.Context, id string) (*models.FeeLine, error) {
	const query = `SELECT id, course_id, semester, amount, description, created_at FROM fees_structure WHERE id = $1`
	var line models.FeeLine
	if err := r.db.GetContext(ctx, &line, query, id); err != nil {
		return nil, err
	}
	return &line, nil
}

// Exists checks whether a fee line is already defined for (course, semester).
func (r *FeeLineRepository) Exists(ctx context.Context, courseID string, semester int) (bool, error) {
	const query = `SELECT 1 FROM fees_structure WHERE course_id = $1 AND semester = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, courseID, semester); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check fee line: %w", err)
	}
	return true, nil
}

// List returns fee lines joined with their course name. With a course filter
// the result is ordered by semester, otherwise by course name then semester.
func (r *FeeLineRepository) List(ctx context.Context, courseID string) ([]models.FeeLineDetail, error) {
	query := `SELECT f.id, f.course_id, f.semester, f.amount, f.description, f.created_at, c.name AS course_name
        FROM fees_structure f
        INNER JOIN courses c ON c.id = f.course_id`
	args := []interface{}{}
	if courseID != "" {
		query += " WHERE f.course_id = $1 ORDER BY f.semester"
		args = append(args, courseID)
	} else {
		query += " ORDER BY c.name, f.semester"
	}
	var lines []models.FeeLineDetail
	if err := r.db.SelectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("list fee lines: %w", err)
	}
	return lines, nil
}
