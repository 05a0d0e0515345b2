package models

// Named cohort used to populate selection controls. Maintained outside the
// dashboard; read-only here.
type Batch struct {
	ID   uint   `gorm:"primaryKey"                   json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}
