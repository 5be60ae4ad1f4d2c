package models

import "time"

// PaymentMode enumerates the accepted payment channels.
type PaymentMode string

const (
	ModeCash       PaymentMode = "Cash"
	ModeCard       PaymentMode = "Card"
	ModeUPI        PaymentMode = "UPI"
	ModeNetBanking PaymentMode = "Net Banking"
	ModeCheque     PaymentMode = "Cheque"
)

// PaymentStatus enumerates the lifecycle states of a payment.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "Pending"
	StatusCompleted PaymentStatus = "Completed"
	StatusFailed    PaymentStatus = "Failed"
	StatusRefunded  PaymentStatus = "Refunded"
)

// ValidMode reports whether the mode belongs to the accepted set.
func ValidMode(m PaymentMode) bool {
	switch m {
	case ModeCash, ModeCard, ModeUPI, ModeNetBanking, ModeCheque:
		return true
	}
	return false
}

// ValidStatus reports whether the status belongs to the accepted set.
func ValidStatus(s PaymentStatus) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Payment records money received against one fee line of one student.
type Payment struct {
	ID            string        `db:"id" json:"id"`
	StudentID     string        `db:"student_id" json:"student_id"`
	FeeID         string        `db:"fee_id" json:"fee_id"`
	PaymentDate   time.Time     `db:"payment_date" json:"payment_date"`
	AmountPaid    float64       `db:"amount_paid" json:"amount_paid"`
	Mode          PaymentMode   `db:"mode" json:"mode"`
	Status        PaymentStatus `db:"status" json:"status"`
	TransactionID *string       `db:"transaction_id" json:"transaction_id,omitempty"`
	Remarks       *string       `db:"remarks" json:"remarks,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// PaymentDetail joins a payment with student, course and receipt context.
// ReceiptNumber is nil when no receipt has been issued yet.
type PaymentDetail struct {
	Payment
	StudentName   string  `db:"student_name" json:"student_name"`
	StudentEmail  string  `db:"student_email" json:"student_email"`
	CourseName    string  `db:"course_name" json:"course_name"`
	Semester      int     `db:"semester" json:"semester"`
	ReceiptNumber *string `db:"receipt_number" json:"receipt_number,omitempty"`
}

// PaymentFilter narrows payment listings by status and/or mode.
type PaymentFilter struct {
	Status PaymentStatus
	Mode   PaymentMode
}

// PaymentStats summarises the payment table; amount figures cover Completed
// payments only.
type PaymentStats struct {
	TotalPayments int     `db:"total_payments" json:"total_payments"`
	Completed     int     `db:"completed" json:"completed"`
	Pending       int     `db:"pending" json:"pending"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	AverageAmount float64 `db:"avg_amount" json:"avg_amount"`
}

// ModeStats is the per-mode breakdown over Completed payments.
type ModeStats struct {
	Mode  PaymentMode `db:"mode" json:"mode"`
	Count int         `db:"count" json:"count"`
	Total float64     `db:"total" json:"total"`
}
