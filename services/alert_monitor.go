package services

import (
	"fmt"
	"log"
	"time"

	"github.com/yeremiapane/studio-app/hub"
	"github.com/yeremiapane/studio-app/models"
	"gorm.io/gorm"
)

// AlertMonitor memindai snapshot secara berkala untuk conflict, shortage,
// dan pembayaran overdue, lalu menyimpan temuan baru sebagai notification
// dan menyiarkannya lewat hub. Temuan di-dedup dengan RefKey.
type AlertMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewAlertMonitor(db *gorm.DB) *AlertMonitor {
	return &AlertMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 5 * time.Minute,
	}
}

func (am *AlertMonitor) Start() {
	go func() {
		ticker := time.NewTicker(am.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				am.Scan()
			case <-am.StopChan:
				return
			}
		}
	}()
	log.Println("Alert monitor started")
}

func (am *AlertMonitor) Stop() {
	close(am.StopChan)
}

// Scan menjalankan satu putaran pemindaian. Dipanggil juga dari tests.
func (am *AlertMonitor) Scan() {
	snap, err := LoadSnapshot(am.DB)
	if err != nil {
		log.Printf("Error loading snapshot for alert scan: %v", err)
		return
	}

	today := Today()
	report := DetectScheduling(snap.Events, snap.Assignments, snap.Staff)

	for _, c := range report.Conflicts {
		key := fmt.Sprintf("conflict:%d:%s:%s", c.StaffID, c.Date, c.TimeSlot)
		created := am.saveNotification(models.Notification{
			Kind:    models.NotifConflict,
			Title:   "Staff double-booked",
			Message: fmt.Sprintf("Staff %d is assigned to %d events on %s (%s)", c.StaffID, len(c.EventIDs), c.Date, c.TimeSlot),
			RefKey:  key,
		})
		if created {
			hub.BroadcastScheduleAlert(c)
		}
	}

	for _, s := range report.Shortages {
		key := fmt.Sprintf("shortage:%d", s.EventID)
		created := am.saveNotification(models.Notification{
			Kind:    models.NotifShortage,
			Title:   "Event understaffed",
			Message: fmt.Sprintf("Event %d on %s is missing roles: %v", s.EventID, s.Date, s.Missing),
			RefKey:  key,
		})
		if created {
			hub.BroadcastScheduleAlert(s)
		}
	}

	for _, o := range DetectOverdueStaffPayments(snap.Payments, snap.Events, today) {
		key := fmt.Sprintf("staff-overdue:%d", o.PaymentID)
		created := am.saveNotification(models.Notification{
			Kind:    models.NotifStaffOverdue,
			Title:   "Staff payment overdue",
			Message: fmt.Sprintf("Payment %d for staff %d (event on %s) has %.2f outstanding", o.PaymentID, o.StaffID, o.EventDate, o.Remaining),
			RefKey:  key,
		})
		if created {
			hub.BroadcastPaymentOverdue(o)
		}
	}

	for _, o := range DetectOverdueClientBookings(snap.Bookings, snap.Events, snap.ClientPaymentRecords, today) {
		key := fmt.Sprintf("client-overdue:%d", o.BookingID)
		created := am.saveNotification(models.Notification{
			Kind:    models.NotifClientOverdue,
			Title:   "Client payment overdue",
			Message: fmt.Sprintf("Booking %d is %d day(s) past its last event with %.2f due", o.BookingID, o.DaysOverdue, o.Due),
			RefKey:  key,
		})
		if created {
			hub.BroadcastPaymentOverdue(o)
		}
	}
}

// saveNotification menyimpan notifikasi kalau RefKey-nya belum ada.
// Return true hanya untuk temuan baru.
func (am *AlertMonitor) saveNotification(n models.Notification) bool {
	var existing models.Notification
	err := am.DB.Where("ref_key = ?", n.RefKey).First(&existing).Error
	if err == nil {
		return false
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking notification %s: %v", n.RefKey, err)
		return false
	}
	if err := am.DB.Create(&n).Error; err != nil {
		log.Printf("Error saving notification %s: %v", n.RefKey, err)
		return false
	}
	return true
}
