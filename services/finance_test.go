package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/studio-app/models"
)

func amount(v float64) *float64 { return &v }

func TestPaymentStatusDerivation(t *testing.T) {
	today := "2025-06-15"

	paid := models.Payment{AgreedAmount: 1000, AmountPaid: 1000}
	assert.Equal(t, models.PaymentPaid, PaymentStatus(&paid, "2025-01-01", today))

	// Overpaid tetap paid.
	over := models.Payment{AgreedAmount: 1000, AmountPaid: 1200}
	assert.Equal(t, models.PaymentPaid, PaymentStatus(&over, "2025-01-01", today))

	partial := models.Payment{AgreedAmount: 1000, AmountPaid: 400}
	assert.Equal(t, models.PaymentPartial, PaymentStatus(&partial, "2025-06-01", today))

	pending := models.Payment{AgreedAmount: 1000}
	assert.Equal(t, models.PaymentPending, PaymentStatus(&pending, "2025-06-01", today))
}

func TestPaymentStatusOverdueAfterGrace(t *testing.T) {
	p := models.Payment{AgreedAmount: 1000, AmountPaid: 400}

	// Event 2025-05-01, grace 30 hari habis 2025-05-31.
	assert.Equal(t, models.PaymentPartial, PaymentStatus(&p, "2025-05-01", "2025-05-31"))
	assert.Equal(t, models.PaymentOverdue, PaymentStatus(&p, "2025-05-01", "2025-06-01"))

	// Belum dibayar sama sekali juga jadi overdue, bukan pending.
	unpaid := models.Payment{AgreedAmount: 1000}
	assert.Equal(t, models.PaymentOverdue, PaymentStatus(&unpaid, "2025-05-01", "2025-07-01"))
}

func TestPaymentStatusZeroAgreedNeverPaid(t *testing.T) {
	p := models.Payment{AgreedAmount: 0, AmountPaid: 0}
	assert.Equal(t, models.PaymentPending, PaymentStatus(&p, "2025-06-01", "2025-06-15"))
}

func TestClientOutstanding(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, ClientID: 1, PackageAmount: amount(50000)},
		{ID: 2, ClientID: 1, PackageAmount: amount(30000)},
		{ID: 3, ClientID: 2}, // tanpa package amount
	}
	records := []models.ClientPaymentRecord{
		{BookingID: 1, Status: models.ClientPaymentReceived, Amount: 20000},
		{BookingID: 1, Status: models.ClientPaymentAgreed, Amount: 50000}, // agreed tidak mengurangi
		{BookingID: 2, Status: models.ClientPaymentReceived, Amount: 30000},
		{BookingID: 99, Status: models.ClientPaymentReceived, Amount: 5000}, // di luar scope
	}

	assert.Equal(t, 30000.0, ClientOutstanding(bookings, records))
}

func TestStaffPendingFloorsAtZeroPerPairing(t *testing.T) {
	records := []models.StaffPaymentRecord{
		// Pairing A: kurang bayar 200.
		{StaffID: 1, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 500},
		{StaffID: 1, BookingID: 1, Type: models.StaffPaymentMade, Amount: 300},
		// Pairing B: lebih bayar 400, tidak boleh menutup pairing A.
		{StaffID: 1, BookingID: 2, Type: models.StaffPaymentAgreed, Amount: 100},
		{StaffID: 1, BookingID: 2, Type: models.StaffPaymentMade, Amount: 500},
	}

	assert.Equal(t, 200.0, StaffPending(records))
}

func TestStaffPendingSeparatesEventPairings(t *testing.T) {
	eventID := uint(9)
	records := []models.StaffPaymentRecord{
		{StaffID: 1, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 500},
		{StaffID: 1, BookingID: 1, EventID: &eventID, Type: models.StaffPaymentMade, Amount: 500},
	}

	// Made terikat event, agreed level booking: pairing berbeda.
	assert.Equal(t, 500.0, StaffPending(records))
}

func TestStaffPendingFor(t *testing.T) {
	records := []models.StaffPaymentRecord{
		{StaffID: 1, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 500},
		{StaffID: 2, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 700},
		{StaffID: 2, BookingID: 1, Type: models.StaffPaymentMade, Amount: 100},
	}

	assert.Equal(t, 500.0, StaffPendingFor(1, records))
	assert.Equal(t, 600.0, StaffPendingFor(2, records))
	assert.Equal(t, 0.0, StaffPendingFor(3, records))
}

func TestDetectOverdueClientBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, ClientID: 1, PackageAmount: amount(10000)},
		{ID: 2, ClientID: 2, PackageAmount: amount(5000)},
		{ID: 3, ClientID: 3, PackageAmount: amount(8000)},
	}
	events := []models.Event{
		{BookingID: 1, EventDate: "2025-06-14"}, // kemarin
		{BookingID: 2, EventDate: "2025-06-20"}, // masih di depan
		{BookingID: 3, EventDate: "2025-06-01"},
	}
	records := []models.ClientPaymentRecord{
		{BookingID: 1, Status: models.ClientPaymentAgreed, Amount: 10000},
		{BookingID: 1, Status: models.ClientPaymentReceived, Amount: 4000},
		{BookingID: 2, Status: models.ClientPaymentAgreed, Amount: 5000},
		// Booking 3 tidak punya record agreed -> tidak pernah overdue.
		{BookingID: 3, Status: models.ClientPaymentReceived, Amount: 1000},
	}

	overdue := DetectOverdueClientBookings(bookings, events, records, "2025-06-15")

	assert.Len(t, overdue, 1)
	o := overdue[0]
	assert.Equal(t, uint(1), o.BookingID)
	assert.Equal(t, "2025-06-14", o.LatestEvent)
	assert.Equal(t, 6000.0, o.Due)
	assert.Equal(t, 1, o.DaysOverdue)
}

func TestDetectOverdueClientBookingsNoGrace(t *testing.T) {
	// Client tidak dapat masa tenggang: sehari lewat langsung overdue.
	bookings := []models.Booking{{ID: 1, ClientID: 1, PackageAmount: amount(1000)}}
	events := []models.Event{{BookingID: 1, EventDate: "2025-06-14"}}
	records := []models.ClientPaymentRecord{
		{BookingID: 1, Status: models.ClientPaymentAgreed, Amount: 1000},
	}

	assert.Len(t, DetectOverdueClientBookings(bookings, events, records, "2025-06-15"), 1)
	// Hari event sendiri belum overdue.
	assert.Empty(t, DetectOverdueClientBookings(bookings, events, records, "2025-06-14"))
}

func TestDetectOverdueStaffPayments(t *testing.T) {
	payments := []models.Payment{
		{ID: 1, EventID: 1, StaffID: 1, AgreedAmount: 1000, AmountPaid: 200},
		{ID: 2, EventID: 2, StaffID: 2, AgreedAmount: 1000, AmountPaid: 200},
		{ID: 3, EventID: 99, StaffID: 3, AgreedAmount: 1000}, // event tak dikenal -> skip
	}
	events := []models.Event{
		{ID: 1, EventDate: "2025-05-01"},
		{ID: 2, EventDate: "2025-06-10"},
	}

	overdue := DetectOverdueStaffPayments(payments, events, "2025-06-15")

	assert.Len(t, overdue, 1)
	assert.Equal(t, uint(1), overdue[0].PaymentID)
	assert.Equal(t, 800.0, overdue[0].Remaining)
}

func TestSummarizeClient(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, ClientID: 1, PackageAmount: amount(50000)},
		{ID: 2, ClientID: 2, PackageAmount: amount(99999)},
	}
	records := []models.ClientPaymentRecord{
		{BookingID: 1, Status: models.ClientPaymentReceived, Amount: 20000},
		{BookingID: 2, Status: models.ClientPaymentReceived, Amount: 100},
	}

	s := SummarizeClient(1, bookings, records)
	assert.Equal(t, 1, s.Bookings)
	assert.Equal(t, 50000.0, s.TotalAgreed)
	assert.Equal(t, 20000.0, s.TotalReceived)
	assert.Equal(t, 30000.0, s.Outstanding)
}

func TestSummarizeStaff(t *testing.T) {
	records := []models.StaffPaymentRecord{
		{StaffID: 1, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 800},
		{StaffID: 1, BookingID: 1, Type: models.StaffPaymentMade, Amount: 300},
		{StaffID: 2, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 999},
	}

	s := SummarizeStaff(1, records)
	assert.Equal(t, 800.0, s.TotalAgreed)
	assert.Equal(t, 300.0, s.TotalMade)
	assert.Equal(t, 500.0, s.Pending)
}
