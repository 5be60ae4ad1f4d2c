package models

import "time"

// Student represents a learner enrolled in exactly one course.
type Student struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"phone" json:"phone"`
	CourseID      string    `db:"course_id" json:"course_id"`
	AdmissionYear int       `db:"admission_year" json:"admission_year"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// StudentLedger is the per-student fee position: what is owed, what has been
// paid (Completed payments only) and the derived settlement status.
type StudentLedger struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Email         string  `db:"email" json:"email"`
	Phone         string  `db:"phone" json:"phone"`
	CourseName    string  `db:"course_name" json:"course_name"`
	AdmissionYear int     `db:"admission_year" json:"admission_year"`
	TotalFees     float64 `db:"total_fees" json:"total_fees"`
	TotalPaid     float64 `db:"total_paid" json:"total_paid"`
	BalanceDue    float64 `db:"balance_due" json:"balance_due"`
	Status        string  `json:"status"`
}

// LedgerSummary aggregates the ledger across all students.
type LedgerSummary struct {
	TotalStudents   int     `json:"total_students"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	Collected       float64 `json:"collected"`
	Pending         float64 `json:"pending"`
	CollectionRate  float64 `json:"collection_rate"`
}
