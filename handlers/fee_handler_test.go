package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IshaanAggrawal/InstituteManager/models"
)

func TestValidatePayment(t *testing.T) {
	fee := &models.Fee{TotalAmount: 10000, PaidAmount: 4000} // balance 6000

	tests := []struct {
		name    string
		payload paymentPayload
		want    string
	}{
		{
			"full settlement needs no next date",
			paymentPayload{Amount: 6000, PaymentMode: "Cash"},
			"",
		},
		{
			"partial with next date",
			paymentPayload{Amount: 1000, PaymentMode: "UPI", NextDueDate: "2024-03-01"},
			"",
		},
		{
			"partial without next date rejected",
			paymentPayload{Amount: 1000, PaymentMode: "UPI"},
			"NEXT_DUE_DATE_REQUIRED",
		},
		{
			"overpayment rejected",
			paymentPayload{Amount: 6001, PaymentMode: "Cash"},
			"OVERPAYMENT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validatePayment(fee, &tt.payload))
		})
	}
}

func TestBuildDefaulterEntries(t *testing.T) {
	fees := []models.Fee{
		{
			TotalAmount: 10000, PaidAmount: 4000, DueDate: "2024-02-01",
			Student: models.Student{Name: "Aarav Shah", RollNo: "101", ParentPhone: "9876500001", Batch: "Class 12-A"},
		},
		{
			TotalAmount: 8000, PaidAmount: 8000, DueDate: "2024-02-01",
			Student: models.Student{Name: "Diya Patel", RollNo: "102"},
		},
		{
			// paid above total: still not a defaulter
			TotalAmount: 5000, PaidAmount: 6000, DueDate: "2024-02-01",
			Student: models.Student{Name: "Kabir Rao", RollNo: "103"},
		},
	}

	entries := buildDefaulterEntries(fees)
	assert.Len(t, entries, 1)
	assert.Equal(t, "101", entries[0].RollNo)
	assert.Equal(t, 6000.0, entries[0].DueAmount)
	assert.Equal(t, "2024-02-01", entries[0].DueDate)
}
