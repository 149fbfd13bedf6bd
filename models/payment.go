package models

import "time"

// Derived status untuk payment staff per-event. Tidak pernah disimpan;
// dihitung ulang dari agreed/paid + tanggal event (lihat services.PaymentStatus).
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

// Payment adalah ledger pembayaran staff untuk satu event.
type Payment struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	EventID      uint                 `gorm:"not null;index" json:"event_id"`
	Event        *Event               `gorm:"foreignKey:EventID" json:"event,omitempty"`
	StaffID      uint                 `gorm:"not null;index" json:"staff_id"`
	Staff        *Staff               `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	AgreedAmount float64              `gorm:"type:decimal(12,2);not null;default:0.00" json:"agreed_amount"`
	AmountPaid   float64              `gorm:"type:decimal(12,2);not null;default:0.00" json:"amount_paid"`
	Notes        string               `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time            `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time            `gorm:"not null" json:"updated_at"`
	Transactions []PaymentTransaction `gorm:"foreignKey:PaymentID" json:"transactions,omitempty"`
}

// PaymentTransaction adalah satu pembayaran tunai/transfer terhadap Payment.
type PaymentTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PaymentID uint      `gorm:"not null;index" json:"payment_id"`
	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Method    string    `gorm:"type:varchar(30);default:'cash'" json:"method"`
	Note      string    `gorm:"type:varchar(255)" json:"note"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
