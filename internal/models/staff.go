package models

import "time"

// Staff is the profile attached to a user whose role is "staff".
// The 1:1 with User is enforced at the application layer (existence
// check before insert); the index below is deliberately non-unique to
// match the source schema.
type Staff struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE;" json:"user"`

	Contact      string     `gorm:"size:50" json:"contact"`
	Position     string     `gorm:"size:100" json:"position"`
	AssignedRoom string     `gorm:"size:100" json:"assigned_room"`
	HireDate     *time.Time `json:"hire_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
