package services

import (
	"time"

	"github.com/yeremiapane/studio-app/models"
)

// StaffPaymentGraceDays adalah masa tenggang sebelum payment staff per-event
// dianggap overdue. Aturan bisnis tetap; sisi client tidak punya grace sama
// sekali, asimetri itu dipertahankan apa adanya.
const StaffPaymentGraceDays = 30

const isoDate = "2006-01-02"

func parseISO(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PaymentStatus menurunkan status payment staff per-event.
// Overdue hanya kalau masih kurang bayar DAN today > event_date + 30 hari.
func PaymentStatus(p *models.Payment, eventDate, today string) string {
	if p.AgreedAmount > 0 && p.AmountPaid >= p.AgreedAmount {
		return models.PaymentPaid
	}

	if p.AmountPaid < p.AgreedAmount {
		if ed, ok := parseISO(eventDate); ok {
			if td, ok2 := parseISO(today); ok2 {
				if td.After(ed.AddDate(0, 0, StaffPaymentGraceDays)) {
					return models.PaymentOverdue
				}
			}
		}
	}

	if p.AmountPaid > 0 {
		return models.PaymentPartial
	}
	return models.PaymentPending
}

// ClientOutstanding = total package amount − total pembayaran berstatus received.
// Scope mengikuti input: kirim semua booking untuk angka global, atau subset
// untuk per-client / per-booking.
func ClientOutstanding(bookings []models.Booking, records []models.ClientPaymentRecord) float64 {
	var agreed float64
	ids := make(map[uint]bool, len(bookings))
	for _, b := range bookings {
		ids[b.ID] = true
		if b.PackageAmount != nil {
			agreed += *b.PackageAmount
		}
	}

	var received float64
	for _, r := range records {
		if r.Status != models.ClientPaymentReceived {
			continue
		}
		if !ids[r.BookingID] {
			continue
		}
		received += r.Amount
	}
	return agreed - received
}

// StaffPending menjumlahkan sisa pembayaran staff dari ledger level booking.
// Per pairing staff+booking+event: max(agreed − made, 0). Kelebihan "made"
// di satu pairing tidak pernah menutup kekurangan pairing lain (floor nol
// satu arah, bukan netting).
func StaffPending(records []models.StaffPaymentRecord) float64 {
	type pairing struct {
		staffID   uint
		bookingID uint
		eventID   uint // 0 kalau tidak terkait event
	}

	agreed := make(map[pairing]float64)
	made := make(map[pairing]float64)
	order := make([]pairing, 0)

	for _, r := range records {
		k := pairing{staffID: r.StaffID, bookingID: r.BookingID}
		if r.EventID != nil {
			k.eventID = *r.EventID
		}
		switch r.Type {
		case models.StaffPaymentAgreed:
			if _, seen := agreed[k]; !seen {
				if _, m := made[k]; !m {
					order = append(order, k)
				}
			}
			agreed[k] += r.Amount
		case models.StaffPaymentMade:
			if _, seen := made[k]; !seen {
				if _, a := agreed[k]; !a {
					order = append(order, k)
				}
			}
			made[k] += r.Amount
		}
	}

	var pending float64
	for _, k := range order {
		if rem := agreed[k] - made[k]; rem > 0 {
			pending += rem
		}
	}
	return pending
}

// StaffPendingFor menghitung pending satu staff saja.
func StaffPendingFor(staffID uint, records []models.StaffPaymentRecord) float64 {
	scoped := make([]models.StaffPaymentRecord, 0, len(records))
	for _, r := range records {
		if r.StaffID == staffID {
			scoped = append(scoped, r)
		}
	}
	return StaffPending(scoped)
}

// OverdueClientBooking adalah booking yang pembayarannya terlambat dari sisi client.
type OverdueClientBooking struct {
	BookingID   uint    `json:"booking_id"`
	ClientID    uint    `json:"client_id"`
	LatestEvent string  `json:"latest_event_date"`
	Due         float64 `json:"due"`
	DaysOverdue int     `json:"days_overdue"`
}

// DetectOverdueClientBookings: booking overdue kalau masih ada record "agreed"
// dan tanggal event terakhirnya sudah lewat (strictly before today). Tanpa grace.
func DetectOverdueClientBookings(bookings []models.Booking, events []models.Event, records []models.ClientPaymentRecord, today string) []OverdueClientBooking {
	latest := make(map[uint]string, len(bookings))
	for _, ev := range events {
		if ev.EventDate > latest[ev.BookingID] {
			latest[ev.BookingID] = ev.EventDate
		}
	}

	hasAgreed := make(map[uint]bool)
	received := make(map[uint]float64)
	for _, r := range records {
		switch r.Status {
		case models.ClientPaymentAgreed:
			hasAgreed[r.BookingID] = true
		case models.ClientPaymentReceived:
			received[r.BookingID] += r.Amount
		}
	}

	td, okToday := parseISO(today)

	out := make([]OverdueClientBooking, 0)
	for _, b := range bookings {
		last := latest[b.ID]
		if last == "" || last >= today {
			continue
		}
		if !hasAgreed[b.ID] {
			continue
		}

		var due float64
		if b.PackageAmount != nil {
			due = *b.PackageAmount - received[b.ID]
		}

		days := 0
		if okToday {
			if ld, ok := parseISO(last); ok {
				days = int(td.Sub(ld).Hours() / 24)
			}
		}

		out = append(out, OverdueClientBooking{
			BookingID:   b.ID,
			ClientID:    b.ClientID,
			LatestEvent: last,
			Due:         due,
			DaysOverdue: days,
		})
	}
	return out
}

// OverdueStaffPayment adalah payment per-event yang melewati masa tenggang 30 hari.
type OverdueStaffPayment struct {
	PaymentID uint    `json:"payment_id"`
	EventID   uint    `json:"event_id"`
	StaffID   uint    `json:"staff_id"`
	EventDate string  `json:"event_date"`
	Remaining float64 `json:"remaining"`
}

// DetectOverdueStaffPayments memindai seluruh payment per-event.
func DetectOverdueStaffPayments(payments []models.Payment, events []models.Event, today string) []OverdueStaffPayment {
	dates := make(map[uint]string, len(events))
	for _, ev := range events {
		dates[ev.ID] = ev.EventDate
	}

	out := make([]OverdueStaffPayment, 0)
	for i := range payments {
		p := &payments[i]
		date := dates[p.EventID]
		if date == "" {
			continue
		}
		if PaymentStatus(p, date, today) != models.PaymentOverdue {
			continue
		}
		out = append(out, OverdueStaffPayment{
			PaymentID: p.ID,
			EventID:   p.EventID,
			StaffID:   p.StaffID,
			EventDate: date,
			Remaining: p.AgreedAmount - p.AmountPaid,
		})
	}
	return out
}

// ClientSummary merangkum posisi keuangan satu client.
type ClientSummary struct {
	ClientID      uint    `json:"client_id"`
	Bookings      int     `json:"bookings"`
	TotalAgreed   float64 `json:"total_agreed"`
	TotalReceived float64 `json:"total_received"`
	Outstanding   float64 `json:"outstanding"`
}

// SummarizeClient menghitung ringkasan keuangan untuk satu client.
func SummarizeClient(clientID uint, bookings []models.Booking, records []models.ClientPaymentRecord) ClientSummary {
	s := ClientSummary{ClientID: clientID}
	owned := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.ClientID != clientID {
			continue
		}
		owned = append(owned, b)
		s.Bookings++
		if b.PackageAmount != nil {
			s.TotalAgreed += *b.PackageAmount
		}
	}
	ids := make(map[uint]bool, len(owned))
	for _, b := range owned {
		ids[b.ID] = true
	}
	for _, r := range records {
		if r.Status == models.ClientPaymentReceived && ids[r.BookingID] {
			s.TotalReceived += r.Amount
		}
	}
	s.Outstanding = s.TotalAgreed - s.TotalReceived
	return s
}

// StaffSummary merangkum posisi pembayaran satu staff dari ledger level booking.
type StaffSummary struct {
	StaffID     uint    `json:"staff_id"`
	TotalAgreed float64 `json:"total_agreed"`
	TotalMade   float64 `json:"total_made"`
	Pending     float64 `json:"pending"`
}

// SummarizeStaff menghitung ringkasan pembayaran untuk satu staff.
func SummarizeStaff(staffID uint, records []models.StaffPaymentRecord) StaffSummary {
	s := StaffSummary{StaffID: staffID}
	for _, r := range records {
		if r.StaffID != staffID {
			continue
		}
		switch r.Type {
		case models.StaffPaymentAgreed:
			s.TotalAgreed += r.Amount
		case models.StaffPaymentMade:
			s.TotalMade += r.Amount
		}
	}
	s.Pending = StaffPendingFor(staffID, records)
	return s
}
