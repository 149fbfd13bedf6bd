package models

import "time"

// StaffAssignment menghubungkan satu staff ke satu event. Role di assignment
// boleh berbeda dengan job role staff (mis. videographer mengisi slot photographer).
type StaffAssignment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	EventID        uint       `gorm:"not null;index" json:"event_id"`
	Event          *Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	StaffID        uint       `gorm:"not null;index" json:"staff_id"`
	Staff          *Staff     `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Role           string     `gorm:"type:varchar(30)" json:"role"`
	DataReceived   bool       `gorm:"not null;default:false" json:"data_received"`
	DataReceivedAt *time.Time `json:"data_received_at,omitempty"`
	DataReceivedBy string     `gorm:"type:varchar(255)" json:"data_received_by"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}
