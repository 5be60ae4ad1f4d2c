package models

import "time"

// Receipt is the immutable proof-of-payment record, one per payment.
type Receipt struct {
	ID            string    `db:"id" json:"id"`
	ReceiptNumber string    `db:"receipt_number" json:"receipt_number"`
	PaymentID     string    `db:"payment_id" json:"payment_id"`
	GeneratedAt   time.Time `db:"generated_at" json:"generated_at"`
}

// ReceiptDocument is the fully resolved printable receipt: the join path
// receipt -> payment -> student -> fee line -> course.
type ReceiptDocument struct {
	ReceiptNumber  string    `db:"receipt_number" json:"receipt_number"`
	GeneratedAt    time.Time `db:"generated_at" json:"generated_at"`
	PaymentID      string    `db:"payment_id" json:"payment_id"`
	PaymentDate    time.Time `db:"payment_date" json:"payment_date"`
	AmountPaid     float64   `db:"amount_paid" json:"amount_paid"`
	Mode           string    `db:"mode" json:"mode"`
	TransactionID  *string   `db:"transaction_id" json:"transaction_id,omitempty"`
	Remarks        *string   `db:"remarks" json:"remarks,omitempty"`
	StudentID      string    `db:"student_id" json:"student_id"`
	StudentName    string    `db:"student_name" json:"student_name"`
	StudentEmail   string    `db:"student_email" json:"student_email"`
	StudentPhone   string    `db:"student_phone" json:"student_phone"`
	CourseName     string    `db:"course_name" json:"course_name"`
	DurationYears  int       `db:"duration_years" json:"duration_years"`
	Semester       int       `db:"semester" json:"semester"`
	SemesterFee    float64   `db:"semester_fee" json:"semester_fee"`
	FeeDescription string    `db:"fee_description" json:"fee_description"`
	AmountInWords  string    `json:"amount_in_words"`
}
