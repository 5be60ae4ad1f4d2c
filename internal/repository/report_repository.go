package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Vedant491/college-fees-api/internal/models"
)

// ReportRepository serves read-only aggregates for the dashboard.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// DashboardCounters holds the headline dashboard numbers.
type DashboardCounters struct {
	TotalStudents   int     `db:"total_students"`
	TotalCourses    int     `db:"total_courses"`
	TotalPayments   int     `db:"total_payments"`
	TotalRevenue    float64 `db:"total_revenue"`
	PendingPayments int     `db:"pending_payments"`
}

// Counters computes the headline counters. Revenue and the payment count
// cover Completed payments only; pending counts Pending rows.
func (r *ReportRepository) Counters(ctx context.Context) (*DashboardCounters, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM students) AS total_students,
        (SELECT COUNT(*) FROM courses) AS total_courses,
        (SELECT COUNT(*) FROM payments WHERE status = $1) AS total_payments,
        (SELECT COALESCE(SUM(amount_paid), 0) FROM payments WHERE status = $1) AS total_revenue,
        (SELECT COUNT(*) FROM payments WHERE status = $2) AS pending_payments`
	var counters DashboardCounters
	if err := r.db.GetContext(ctx, &counters, query, models.StatusCompleted, models.StatusPending); err != nil {
		return nil, fmt.Errorf("dashboard counters: %w", err)
	}
	return &counters, nil
}

// CourseRevenue reports distinct enrolled students and Completed-payment
// collections per course, best-collecting course first.
func (r *ReportRepository) CourseRevenue(ctx context.Context) ([]models.CourseRevenue, error) {
	const query = `SELECT c.name AS course_name,
        COUNT(DISTINCT s.id) AS enrolled_students,
        COALESCE(SUM(p.amount_paid), 0) AS total_collected
        FROM courses c
        LEFT JOIN students s ON s.course_id = c.id
        LEFT JOIN payments p ON p.student_id = s.id AND p.status = $1
        GROUP BY c.id, c.name
        ORDER BY total_collected DESC`
	var revenue []models.CourseRevenue
	if err := r.db.SelectContext(ctx, &revenue, query, models.StatusCompleted); err != nil {
		return nil, fmt.Errorf("course revenue: %w", err)
	}
	return revenue, nil
}
