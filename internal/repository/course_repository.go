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

// CourseRepository manages persistence for the course catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (id, name, duration_years, total_fees, created_at)
        VALUES (:id, :name, :duration_years, :total_fees, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// FindByID fetches a course by ID.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	const query = `SELECT id, name, duration_years, total_fees, created_at FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// ExistsByName checks whether a course with the given name exists.
func (r *CourseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT 1 FROM courses WHERE name = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check course name: %w", err)
	}
	return true, nil
}

// ListSummaries returns all courses with enrollment counts and the sum of
// Completed payments made by their students, ordered by course name.
func (r *CourseRepository) ListSummaries(ctx context.Context) ([]models.CourseSummary, error) {
	const query = `SELECT c.id, c.name, c.duration_years, c.total_fees, c.created_at,
        COUNT(DISTINCT s.id) AS enrolled_students,
        COALESCE(SUM(p.amount_paid), 0) AS total_collected
        FROM courses c
        LEFT JOIN students s ON s.course_id = c.id
        LEFT JOIN payments p ON p.student_id = s.id AND p.status = $1
        GROUP BY c.id, c.name, c.duration_years, c.total_fees, c.created_at
        ORDER BY c.name`
	var summaries []models.CourseSummary
	if err := r.db.SelectContext(ctx, &summaries, query, models.StatusCompleted); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return summaries, nil
}
