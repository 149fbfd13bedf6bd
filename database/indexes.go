package database

import (
	"strings"

	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

// Composite index untuk jalur scan yang panas: bucketing conflict per
// (tanggal, slot) dan lookup assignment per event+staff. AutoMigrate hanya
// membuat index satu kolom dari tag, sisanya dipasang di sini.
var indexStatements = []string{
	"CREATE INDEX idx_events_date_slot ON events (event_date, time_slot)",
	"CREATE UNIQUE INDEX idx_assignments_event_staff ON staff_assignments (event_id, staff_id)",
	"CREATE INDEX idx_staff_payment_records_pairing ON staff_payment_records (staff_id, booking_id, event_id)",
	"CREATE INDEX idx_client_payment_records_status ON client_payment_records (booking_id, status)",
}

// EnsureIndexes memasang index tambahan. Index yang sudah ada dilewati,
// error lain hanya dicatat supaya startup tidak gagal di engine yang
// tidak mendukung statement tertentu (mis. SQLite di tests).
func EnsureIndexes(db *gorm.DB) error {
	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "already exists") {
				continue
			}
			utils.ErrorLogger.Printf("Error creating index: %v\nStatement: %s", err, stmt)
			continue
		}
		utils.InfoLogger.Printf("Index ensured: %s", stmt)
	}
	return nil
}
