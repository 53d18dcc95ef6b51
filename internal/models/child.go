package models

import "time"

type Child struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string     `gorm:"size:255;not null" json:"name"`
	DOB           *time.Time `json:"dob"`
	Gender        string     `gorm:"size:20" json:"gender"`
	ParentName    string     `gorm:"size:255" json:"parent_name"`
	ParentContact string     `gorm:"size:100" json:"parent_contact"`
	Address       string     `json:"address"`
	Allergies     string     `json:"allergies"`
	MedicalInfo   string     `json:"medical_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
