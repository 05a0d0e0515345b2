package models

import "time"

// Punch rows written by the biometric integration (or the schedule sync).
// The dashboard only reads these.
type Attendance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	Date      string    `json:"date" gorm:"size:10;index;not null"` // YYYY-MM-DD
	Status    string    `json:"status" gorm:"size:20;not null"`     // Present|Late|Absent
	Type      string    `json:"type" gorm:"size:10;not null"`       // In|Out

	CreatedAt time.Time `json:"created_at"`
}

const (
	AttendancePresent = "Present"
	AttendanceLate    = "Late"
	AttendanceAbsent  = "Absent"

	PunchIn  = "In"
	PunchOut = "Out"
)
