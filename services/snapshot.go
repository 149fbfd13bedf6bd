package services

import (
	"github.com/yeremiapane/studio-app/models"
	"gorm.io/gorm"
)

// Snapshot memuat seluruh data studio dalam memori. Di-refresh wholesale
// (query ulang semua tabel), tidak ada sync inkremental; semua modul
// komputasi murni bekerja di atas snapshot ini.
type Snapshot struct {
	Clients              []models.Client
	Bookings             []models.Booking
	Events               []models.Event
	Staff                []models.Staff
	Assignments          []models.StaffAssignment
	Workflows            []models.Workflow
	Payments             []models.Payment
	StaffPaymentRecords  []models.StaffPaymentRecord
	ClientPaymentRecords []models.ClientPaymentRecord
	Expenses             []models.Expense
}

// LoadSnapshot mengambil seluruh tabel sekaligus. Error pertama menghentikan
// load; snapshot setengah jadi tidak pernah dikembalikan.
func LoadSnapshot(db *gorm.DB) (*Snapshot, error) {
	s := &Snapshot{}
	steps := []struct {
		dest interface{}
	}{
		{&s.Clients},
		{&s.Bookings},
		{&s.Events},
		{&s.Staff},
		{&s.Assignments},
		{&s.Workflows},
		{&s.Payments},
		{&s.StaffPaymentRecords},
		{&s.ClientPaymentRecords},
		{&s.Expenses},
	}
	for _, st := range steps {
		if err := db.Find(st.dest).Error; err != nil {
			return nil, err
		}
	}
	return s, nil
}

// EventsOf mengembalikan events milik satu booking.
func (s *Snapshot) EventsOf(bookingID uint) []models.Event {
	out := make([]models.Event, 0)
	for _, ev := range s.Events {
		if ev.BookingID == bookingID {
			out = append(out, ev)
		}
	}
	return out
}

// WorkflowsOf mengembalikan workflows milik satu booking.
func (s *Snapshot) WorkflowsOf(bookingID uint) []models.Workflow {
	out := make([]models.Workflow, 0)
	for _, w := range s.Workflows {
		if w.BookingID == bookingID {
			out = append(out, w)
		}
	}
	return out
}

// StatusOf menurunkan status lifecycle sebuah booking dari snapshot.
func (s *Snapshot) StatusOf(bookingID uint, today string) string {
	return DeriveBookingStatus(s.EventsOf(bookingID), s.WorkflowsOf(bookingID), today)
}
