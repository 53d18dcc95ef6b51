package models

import "time"

type Attendance struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	ChildID uint  `gorm:"index;not null" json:"child_id"`
	Child   Child `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`

	Date     time.Time `gorm:"not null" json:"date"`
	CheckIn  string    `gorm:"size:5" json:"check_in"`
	CheckOut string    `gorm:"size:5" json:"check_out"`
	Status   string    `gorm:"size:32;default:'Present'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
