package models

import "time"

type Client struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email      *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	AltContact *string   `gorm:"type:varchar(20)" json:"alt_contact,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
	Bookings   []Booking `gorm:"foreignKey:ClientID" json:"bookings,omitempty"`
}
