package models

import "time"

const (
	ExpenseGeneral = "general"
	ExpenseBooking = "booking"
)

type Expense struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Type          string    `gorm:"type:varchar(10);not null;default:'general'" json:"type"`
	BookingID     *uint     `gorm:"index" json:"booking_id,omitempty"` // hanya untuk type=booking
	Booking       *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description   string    `gorm:"type:varchar(255);not null" json:"description"`
	Date          string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	PaymentMethod string    `gorm:"type:varchar(30);default:'cash'" json:"payment_method"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
