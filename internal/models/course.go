package models

import "time"

// Course represents a course offered by the college.
type Course struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	DurationYears int       `db:"duration_years" json:"duration_years"`
	TotalFees     float64   `db:"total_fees" json:"total_fees"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CourseSummary augments a course with enrollment and collection figures.
type CourseSummary struct {
	Course
	EnrolledStudents int     `db:"enrolled_students" json:"enrolled_students"`
	TotalCollected   float64 `db:"total_collected" json:"total_collected"`
}
