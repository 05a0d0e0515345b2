package models

import "time"

type TestSchedule struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Subject   string    `gorm:"size:100;not null" json:"subject"`
	Batch     string    `gorm:"size:50;not null" json:"batch"`
	TestDate  string    `gorm:"size:10;not null" json:"test_date"`  // YYYY-MM-DD
	StartTime string    `gorm:"size:10;not null" json:"start_time"` // HH:MM
	Duration  string    `gorm:"size:30"          json:"duration"`   // e.g. "2 hours"
	CreatedAt time.Time `json:"created_at"`
}
