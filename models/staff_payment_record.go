package models

import "time"

// Tipe record untuk ledger pembayaran staff level booking.
// "agreed" = komitmen, "made" = uang benar-benar keluar.
const (
	StaffPaymentAgreed = "agreed"
	StaffPaymentMade   = "made"
)

// StaffPaymentRecord adalah ledger pembayaran staff per booking, terpisah
// dari Payment per-event. Dua mekanisme ini hidup berdampingan dan tidak
// direkonsiliasi satu sama lain.
type StaffPaymentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StaffID   uint      `gorm:"not null;index" json:"staff_id"`
	Staff     *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	BookingID uint      `gorm:"not null;index" json:"booking_id"`
	Booking   *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	EventID   *uint     `gorm:"index" json:"event_id,omitempty"` // optional event linkage
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Notes     string    `gorm:"type:varchar(255)" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
