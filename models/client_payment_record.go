package models

import "time"

const (
	ClientPaymentAgreed   = "agreed"
	ClientPaymentReceived = "received"
)

// ClientPaymentRecord adalah ledger pembayaran client terhadap satu booking.
type ClientPaymentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index" json:"booking_id"`
	Booking   *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Status    string    `gorm:"type:varchar(10);not null;default:'agreed'" json:"status"`
	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Method    string    `gorm:"type:varchar(30)" json:"method"`
	Notes     string    `gorm:"type:varchar(255)" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
