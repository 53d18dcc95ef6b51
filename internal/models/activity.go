package models

import "time"

type Activity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `json:"description"`

	ScheduledDate *time.Time `json:"scheduled_date"`
	StartTime     string     `gorm:"size:5" json:"start_time"`
	EndTime       string     `gorm:"size:5" json:"end_time"`

	// Nullable on purpose: activities outlive staff reassignment, the
	// reference is cleared when the staff profile goes away.
	AssignedStaffID *uint  `gorm:"index" json:"assigned_staff_id"`
	AssignedStaff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
