package models

import "time"

// FeeLine defines what is owed for one semester of one course.
// (course_id, semester) is unique, enforced by the database.
type FeeLine struct {
	ID          string    `db:"id" json:"id"`
	CourseID    string    `db:"course_id" json:"course_id"`
	Semester    int       `db:"semester" json:"semester"`
	Amount      float64   `db:"amount" json:"amount"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// FeeLineDetail joins the fee line with its course name.
type FeeLineDetail struct {
	FeeLine
	CourseName string `db:"course_name" json:"course_name"`
}
