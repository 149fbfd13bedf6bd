package models

import "time"

// Kind notifikasi yang dihasilkan alert monitor.
const (
	NotifConflict      = "conflict"
	NotifShortage      = "shortage"
	NotifStaffOverdue  = "staff_payment_overdue"
	NotifClientOverdue = "client_payment_overdue"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"type:varchar(30);not null" json:"kind"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	RefKey    string    `gorm:"type:varchar(100);uniqueIndex" json:"ref_key"` // dedup key per temuan
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
