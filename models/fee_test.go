package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeBalance(t *testing.T) {
	f := Fee{TotalAmount: 10000, PaidAmount: 2500}
	assert.Equal(t, 7500.0, f.Balance())
}

func TestFeeStatusAt(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		fee  Fee
		want string
	}{
		{"fully paid", Fee{TotalAmount: 5000, PaidAmount: 5000, DueDate: "2024-01-01"}, FeeStatusPaid},
		{"overpaid still paid", Fee{TotalAmount: 5000, PaidAmount: 6000, DueDate: "2024-01-01"}, FeeStatusPaid},
		{"past due with balance", Fee{TotalAmount: 5000, PaidAmount: 1000, DueDate: "2024-02-01"}, FeeStatusOverdue},
		{"partial before due date", Fee{TotalAmount: 5000, PaidAmount: 1000, DueDate: "2024-03-01"}, FeeStatusPartiallyPaid},
		{"nothing paid before due date", Fee{TotalAmount: 5000, PaidAmount: 0, DueDate: "2024-03-01"}, FeeStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fee.StatusAt(now))
		})
	}

	// Paid iff balance <= 0, regardless of the due date
	paid := Fee{TotalAmount: 5000, PaidAmount: 5000, DueDate: "2020-01-01"}
	assert.Equal(t, FeeStatusPaid, paid.StatusAt(now))
}
