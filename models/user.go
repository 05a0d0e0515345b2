package models

import "time"

// Dashboard account. Role is either "admin" or "staff".
type User struct {
	ID           uint      `gorm:"primaryKey"                   json:"id"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null"            json:"-"`
	Role         string    `gorm:"size:20;not null;default:staff" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
