package service

// Derived settlement statuses for a student ledger row.
const (
	LedgerPaid    = "Paid"
	LedgerPartial = "Partial"
	LedgerPending = "Pending"
)

// Bucketing thresholds as percentage of total fees paid.
const (
	paidThresholdPct    = 100.0
	partialThresholdPct = 50.0
)

// LedgerStatus buckets a student's fee position by the percentage of total
// fees covered by Completed payments. Zero total fees counts as nothing paid.
func LedgerStatus(totalPaid, totalFees float64) string {
	if totalFees <= 0 {
		return LedgerPending
	}
	pct := totalPaid / totalFees * 100
	switch {
	case pct >= paidThresholdPct:
		return LedgerPaid
	case pct >= partialThresholdPct:
		return LedgerPartial
	default:
		return LedgerPending
	}
}
