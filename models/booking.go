package models

import "time"

// Booking status labels diturunkan dari events + workflows, tidak disimpan di DB.
const (
	BookingStatusNoEvents       = "No Events"
	BookingStatusShootScheduled = "Shoot Scheduled"
	BookingStatusPostProduction = "Post-Production"
	BookingStatusDelivered      = "Delivered"
	BookingStatusInProgress     = "In Progress"
)

type Booking struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ClientID      uint       `gorm:"not null;index" json:"client_id"`
	Client        Client     `gorm:"foreignKey:ClientID" json:"client"`
	Name          string     `gorm:"type:varchar(255)" json:"name"` // optional display name
	PackageAmount *float64   `gorm:"type:decimal(12,2)" json:"package_amount,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
	Events        []Event    `gorm:"foreignKey:BookingID" json:"events,omitempty"`
	Workflows     []Workflow `gorm:"foreignKey:BookingID" json:"workflows,omitempty"`
}
