package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerStatus(t *testing.T) {
	cases := []struct {
		name      string
		totalPaid float64
		totalFees float64
		want      string
	}{
		{"nothing paid", 0, 90000, LedgerPending},
		{"just under half", 44999, 90000, LedgerPending},
		{"exactly half", 45000, 90000, LedgerPartial},
		{"most but not all", 89999, 90000, LedgerPartial},
		{"fully paid", 90000, 90000, LedgerPaid},
		{"overpaid", 95000, 90000, LedgerPaid},
		{"zero fees", 0, 0, LedgerPending},
		{"paid against zero fees", 100, 0, LedgerPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LedgerStatus(tc.totalPaid, tc.totalFees))
		})
	}
}
