package models

import "time"

// One fee account per student. paid_amount accumulates across partial
// payments; status is always derived, never stored.
type Fee struct {
	ID          uint      `gorm:"primaryKey"        json:"id"`
	StudentID   uint      `gorm:"index;not null"    json:"student_id"`
	TotalAmount float64   `gorm:"not null"          json:"total_amount"`
	PaidAmount  float64   `gorm:"not null;default:0" json:"paid_amount"`
	DueDate     string    `gorm:"size:10;not null"  json:"due_date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Student Student `gorm:"foreignKey:StudentID" json:"student"`
}

const (
	FeeStatusPaid          = "Paid"
	FeeStatusOverdue       = "Overdue"
	FeeStatusPartiallyPaid = "PartiallyPaid"
	FeeStatusPending       = "Pending"
)

func (f *Fee) Balance() float64 {
	return f.TotalAmount - f.PaidAmount
}

// StatusAt derives the display status for a reference day (normally today).
// Paid iff balance <= 0; Overdue when the due date has passed with a balance
// remaining; PartiallyPaid once something has been paid; Pending otherwise.
func (f *Fee) StatusAt(now time.Time) string {
	if f.Balance() <= 0 {
		return FeeStatusPaid
	}
	if due, err := time.Parse("2006-01-02", f.DueDate); err == nil {
		if due.Before(now.Truncate(24 * time.Hour)) {
			return FeeStatusOverdue
		}
	}
	if f.PaidAmount > 0 {
		return FeeStatusPartiallyPaid
	}
	return FeeStatusPending
}
