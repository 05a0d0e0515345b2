package models

import "time"

type Student struct {
	ID          uint      `gorm:"primaryKey"                    json:"id"`
	Name        string    `gorm:"size:100;not null"             json:"name"`
	RollNo      string    `gorm:"size:20;uniqueIndex;not null"  json:"roll_no"`
	Batch       string    `gorm:"size:50;not null"              json:"batch"`
	ParentPhone string    `gorm:"size:15;not null"              json:"parent_phone"`
	BiometricID string    `gorm:"size:50"                       json:"biometric_id,omitempty"` // attendance-machine identifier
	PhotoURL    string    `gorm:"type:text"                     json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
