package models

import "time"

// Time slot enum untuk event.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotFullDay   = "full_day"
)

// Event adalah satu sesi pemotretan dalam sebuah booking.
// EventDate disimpan sebagai string ISO YYYY-MM-DD supaya perbandingan
// tanggal tetap lexicographic (fixed-width), sesuai aturan status booking.
type Event struct {
	ID                    uint              `gorm:"primaryKey" json:"id"`
	BookingID             uint              `gorm:"not null;index" json:"booking_id"`
	Booking               *Booking          `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	EventDate             string            `gorm:"type:varchar(10);not null;index" json:"event_date"`
	TimeSlot              string            `gorm:"type:varchar(20);not null;default:'full_day'" json:"time_slot"`
	Venue                 string            `gorm:"type:varchar(255)" json:"venue"`
	RequiredPhotographers int               `gorm:"not null;default:0" json:"required_photographers"`
	RequiredVideographers int               `gorm:"not null;default:0" json:"required_videographers"`
	RequiredDroneOps      int               `gorm:"not null;default:0" json:"required_drone_operators"`
	RequiredEditors       int               `gorm:"not null;default:0" json:"required_editors"`
	CreatedAt             time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time         `gorm:"not null" json:"updated_at"`
	Assignments           []StaffAssignment `gorm:"foreignKey:EventID" json:"assignments,omitempty"`
}

// ValidTimeSlot memeriksa apakah slot termasuk salah satu dari empat nilai enum.
func ValidTimeSlot(slot string) bool {
	switch slot {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotFullDay:
		return true
	}
	return false
}
