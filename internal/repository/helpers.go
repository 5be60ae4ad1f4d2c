package repository

import (
	"errors"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. The unique indexes are the authoritative enforcement for email,
// course name, (course, semester) and receipt-per-payment uniqueness; service
// pre-checks only exist to produce friendlier messages.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
