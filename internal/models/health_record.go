package models

import "time"

// HealthRecord carries its author as a denormalized display name, not a
// user id. Row-level authorization compares this string against the
// caller's name, so two staff members with identical names are
// indistinguishable here. Kept as-is to match the stored data.
type HealthRecord struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	ChildID uint  `gorm:"index;not null" json:"child_id"`
	Child   Child `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`

	Description string     `gorm:"not null" json:"description"`
	DoctorName  string     `gorm:"size:255" json:"doctor_name"`
	RecordDate  *time.Time `json:"record_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
