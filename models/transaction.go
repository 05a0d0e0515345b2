package models

import "time"

// Append-only payment ledger. Rows are never updated or deleted.
type Transaction struct {
	ID              uint      `gorm:"primaryKey"       json:"id"`
	FeeID           uint      `gorm:"index;not null"   json:"fee_id"`
	Amount          float64   `gorm:"not null"         json:"amount"`
	PaymentMode     string    `gorm:"size:20;not null" json:"payment_mode"` // UPI|Cash|Cheque
	Remarks         string    `gorm:"type:text"        json:"remarks"`
	TransactionDate time.Time `gorm:"not null"         json:"transaction_date"`
}

const (
	PayModeUPI    = "UPI"
	PayModeCash   = "Cash"
	PayModeCheque = "Cheque"
)
