package services

import (
	"fmt"

	"github.com/yeremiapane/studio-app/models"
	"gorm.io/gorm"
)

// DeletionOptions adalah pilihan user saat menghapus booking.
// Booking selalu dipaksa true, dan booking=true memaksa events=true
// karena event tidak boleh yatim dari booking yang sudah dihapus.
type DeletionOptions struct {
	ClientPayments      bool `json:"client_payments"`
	StaffAgreedPayments bool `json:"staff_agreed_payments"`
	StaffMadePayments   bool `json:"staff_made_payments"`
	Events              bool `json:"events"`
	Booking             bool `json:"booking"`
}

// Normalize menegakkan invariant pilihan deletion.
func (o *DeletionOptions) Normalize() {
	o.Booking = true
	if o.Booking {
		o.Events = true
	}
}

// DeletionImpact adalah ringkasan dampak penghapusan, murni untuk display
// sebelum konfirmasi. Count + amount per kategori, plus warnings.
type DeletionImpact struct {
	BookingID           uint     `json:"booking_id"`
	Events              int      `json:"events"`
	StaffAssignments    int      `json:"staff_assignments"`
	Workflows           int      `json:"workflows"`
	EventPayments       int      `json:"event_payments"`
	EventPaymentAmount  float64  `json:"event_payment_amount"`
	ClientPayments      int      `json:"client_payments"`
	ClientPaymentAmount float64  `json:"client_payment_amount"`
	StaffAgreedRecords  int      `json:"staff_agreed_records"`
	StaffAgreedAmount   float64  `json:"staff_agreed_amount"`
	StaffMadeRecords    int      `json:"staff_made_records"`
	StaffMadeAmount     float64  `json:"staff_made_amount"`
	Warnings            []string `json:"warnings"`
}

// PlanBookingDeletion menghitung dampak penghapusan sebuah booking atas
// snapshot yang sudah dimuat. Komputasi murni, tidak menyentuh DB.
func PlanBookingDeletion(snap *Snapshot, bookingID uint, opts DeletionOptions) DeletionImpact {
	opts.Normalize()
	impact := DeletionImpact{BookingID: bookingID, Warnings: make([]string, 0)}

	eventIDs := make(map[uint]bool)
	for _, ev := range snap.Events {
		if ev.BookingID != bookingID {
			continue
		}
		eventIDs[ev.ID] = true
		if opts.Events {
			impact.Events++
		}
	}

	for _, a := range snap.Assignments {
		if eventIDs[a.EventID] && opts.Events {
			impact.StaffAssignments++
		}
	}

	for _, w := range snap.Workflows {
		if w.BookingID == bookingID {
			impact.Workflows++
		}
	}

	for _, p := range snap.Payments {
		if eventIDs[p.EventID] && opts.Events {
			impact.EventPayments++
			impact.EventPaymentAmount += p.AgreedAmount
		}
	}

	if opts.ClientPayments {
		for _, r := range snap.ClientPaymentRecords {
			if r.BookingID == bookingID {
				impact.ClientPayments++
				impact.ClientPaymentAmount += r.Amount
			}
		}
	}

	for _, r := range snap.StaffPaymentRecords {
		if r.BookingID != bookingID {
			continue
		}
		switch r.Type {
		case models.StaffPaymentAgreed:
			if opts.StaffAgreedPayments {
				impact.StaffAgreedRecords++
				impact.StaffAgreedAmount += r.Amount
			}
		case models.StaffPaymentMade:
			if opts.StaffMadePayments {
				impact.StaffMadeRecords++
				impact.StaffMadeAmount += r.Amount
			}
		}
	}

	if impact.ClientPaymentAmount > 0 {
		impact.Warnings = append(impact.Warnings,
			fmt.Sprintf("client payment records worth %.2f will be removed", impact.ClientPaymentAmount))
	}
	if impact.StaffMadeAmount > 0 {
		impact.Warnings = append(impact.Warnings,
			fmt.Sprintf("staff payments already made (%.2f) will lose their records", impact.StaffMadeAmount))
	}
	if !opts.ClientPayments {
		impact.Warnings = append(impact.Warnings,
			"client payment records will be kept and reference a deleted booking")
	}
	if !opts.StaffAgreedPayments || !opts.StaffMadePayments {
		impact.Warnings = append(impact.Warnings,
			"some staff payment records will be kept and reference a deleted booking")
	}

	return impact
}

// ExecuteBookingDeletion menjalankan penghapusan dalam urutan dependensi:
// assignments -> payment transactions -> payments -> workflows -> events,
// lalu ledger client/staff, terakhir booking-nya. Seluruh urutan dibungkus
// satu transaksi supaya kegagalan di tengah tidak meninggalkan booking
// setengah terhapus.
func ExecuteBookingDeletion(db *gorm.DB, bookingID uint, opts DeletionOptions) error {
	opts.Normalize()

	return db.Transaction(func(tx *gorm.DB) error {
		var eventIDs []uint
		if err := tx.Model(&models.Event{}).
			Where("booking_id = ?", bookingID).
			Pluck("id", &eventIDs).Error; err != nil {
			return err
		}

		if opts.Events && len(eventIDs) > 0 {
			if err := tx.Where("event_id IN ?", eventIDs).
				Delete(&models.StaffAssignment{}).Error; err != nil {
				return err
			}

			var paymentIDs []uint
			if err := tx.Model(&models.Payment{}).
				Where("event_id IN ?", eventIDs).
				Pluck("id", &paymentIDs).Error; err != nil {
				return err
			}
			if len(paymentIDs) > 0 {
				if err := tx.Where("payment_id IN ?", paymentIDs).
					Delete(&models.PaymentTransaction{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", paymentIDs).
					Delete(&models.Payment{}).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Where("booking_id = ?", bookingID).
			Delete(&models.Workflow{}).Error; err != nil {
			return err
		}

		if opts.Events {
			if err := tx.Where("booking_id = ?", bookingID).
				Delete(&models.Event{}).Error; err != nil {
				return err
			}
		}

		if opts.ClientPayments {
			if err := tx.Where("booking_id = ?", bookingID).
				Delete(&models.ClientPaymentRecord{}).Error; err != nil {
				return err
			}
		}
		if opts.StaffAgreedPayments {
			if err := tx.Where("booking_id = ? AND type = ?", bookingID, models.StaffPaymentAgreed).
				Delete(&models.StaffPaymentRecord{}).Error; err != nil {
				return err
			}
		}
		if opts.StaffMadePayments {
			if err := tx.Where("booking_id = ? AND type = ?", bookingID, models.StaffPaymentMade).
				Delete(&models.StaffPaymentRecord{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Booking{}, bookingID).Error
	})
}
