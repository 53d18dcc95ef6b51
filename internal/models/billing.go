package models

import "time"

// Billing amounts are stored in integer cents so that arithmetic and
// comparisons never go through floating point.
type Billing struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	ChildID uint  `gorm:"index;not null" json:"child_id"`
	Child   Child `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`

	AmountCents int64      `gorm:"not null" json:"amount_cents"`
	Status      string     `gorm:"size:32;not null;default:'Unpaid'" json:"status"`
	IssuedDate  *time.Time `json:"issued_date"`
	DueDate     *time.Time `json:"due_date"`
	Notes       string     `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
