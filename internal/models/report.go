package models

// DashboardSnapshot is the landing-page summary: headline counters, the most
// recent payments and the per-course revenue table.
type DashboardSnapshot struct {
	TotalStudents   int             `json:"total_students"`
	TotalCourses    int             `json:"total_courses"`
	TotalPayments   int             `json:"total_payments"`
	TotalRevenue    float64         `json:"total_revenue"`
	PendingPayments int             `json:"pending_payments"`
	RecentPayments  []PaymentDetail `json:"recent_payments"`
	CourseRevenue   []CourseRevenue `json:"course_revenue"`
}

// CourseRevenue reports distinct enrolled students and Completed-payment
// collections for one course.
type CourseRevenue struct {
	CourseName       string  `db:"course_name" json:"course_name"`
	EnrolledStudents int     `db:"enrolled_students" json:"enrolled_students"`
	TotalCollected   float64 `db:"total_collected" json:"total_collected"`
}
