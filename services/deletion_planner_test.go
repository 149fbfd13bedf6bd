package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/studio-app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func deletionSnapshot() *Snapshot {
	eventID := uint(1)
	return &Snapshot{
		Bookings: []models.Booking{{ID: 1, ClientID: 1}},
		Events: []models.Event{
			{ID: 1, BookingID: 1, EventDate: "2025-06-10"},
			{ID: 2, BookingID: 1, EventDate: "2025-06-11"},
			{ID: 3, BookingID: 2, EventDate: "2025-06-12"}, // booking lain
		},
		Assignments: []models.StaffAssignment{
			{ID: 1, EventID: 1, StaffID: 1},
			{ID: 2, EventID: 2, StaffID: 2},
			{ID: 3, EventID: 3, StaffID: 3},
		},
		Workflows: []models.Workflow{
			{ID: 1, BookingID: 1},
			{ID: 2, BookingID: 2},
		},
		Payments: []models.Payment{
			{ID: 1, EventID: 1, StaffID: 1, AgreedAmount: 500},
			{ID: 2, EventID: 3, StaffID: 3, AgreedAmount: 900},
		},
		ClientPaymentRecords: []models.ClientPaymentRecord{
			{ID: 1, BookingID: 1, Status: models.ClientPaymentReceived, Amount: 2000},
			{ID: 2, BookingID: 2, Status: models.ClientPaymentReceived, Amount: 700},
		},
		StaffPaymentRecords: []models.StaffPaymentRecord{
			{ID: 1, StaffID: 1, BookingID: 1, Type: models.StaffPaymentAgreed, Amount: 500},
			{ID: 2, StaffID: 1, BookingID: 1, EventID: &eventID, Type: models.StaffPaymentMade, Amount: 300},
		},
	}
}

func TestNormalizeForcesBookingAndEvents(t *testing.T) {
	opts := DeletionOptions{}
	opts.Normalize()
	assert.True(t, opts.Booking)
	assert.True(t, opts.Events)
	assert.False(t, opts.ClientPayments)
}

func TestPlanBookingDeletionFullImpact(t *testing.T) {
	snap := deletionSnapshot()
	opts := DeletionOptions{
		ClientPayments:      true,
		StaffAgreedPayments: true,
		StaffMadePayments:   true,
	}

	impact := PlanBookingDeletion(snap, 1, opts)

	assert.Equal(t, uint(1), impact.BookingID)
	assert.Equal(t, 2, impact.Events)
	assert.Equal(t, 2, impact.StaffAssignments)
	assert.Equal(t, 1, impact.Workflows)
	assert.Equal(t, 1, impact.EventPayments)
	assert.Equal(t, 500.0, impact.EventPaymentAmount)
	assert.Equal(t, 1, impact.ClientPayments)
	assert.Equal(t, 2000.0, impact.ClientPaymentAmount)
	assert.Equal(t, 1, impact.StaffAgreedRecords)
	assert.Equal(t, 500.0, impact.StaffAgreedAmount)
	assert.Equal(t, 1, impact.StaffMadeRecords)
	assert.Equal(t, 300.0, impact.StaffMadeAmount)
}

func TestPlanBookingDeletionWarnsOnKeptLedgers(t *testing.T) {
	snap := deletionSnapshot()

	impact := PlanBookingDeletion(snap, 1, DeletionOptions{})

	assert.Equal(t, 0, impact.ClientPayments)
	assert.Equal(t, 0, impact.StaffAgreedRecords)
	assert.Contains(t, impact.Warnings,
		"client payment records will be kept and reference a deleted booking")
	assert.Contains(t, impact.Warnings,
		"some staff payment records will be kept and reference a deleted booking")
}

func setupDeletionDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Client{},
		&models.Booking{},
		&models.Event{},
		&models.Staff{},
		&models.StaffAssignment{},
		&models.Workflow{},
		&models.Payment{},
		&models.PaymentTransaction{},
		&models.StaffPaymentRecord{},
		&models.ClientPaymentRecord{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestExecuteBookingDeletion(t *testing.T) {
	db := setupDeletionDB(t)

	client := models.Client{Name: "Arjun"}
	db.Create(&client)
	booking := models.Booking{ClientID: client.ID, Name: "Wedding"}
	db.Create(&booking)
	event := models.Event{BookingID: booking.ID, EventDate: "2025-06-10", TimeSlot: models.SlotMorning}
	db.Create(&event)
	staff := models.Staff{Name: "Ravi", Role: models.RolePhotographer}
	db.Create(&staff)
	db.Create(&models.StaffAssignment{EventID: event.ID, StaffID: staff.ID})
	db.Create(&models.Workflow{BookingID: booking.ID})
	payment := models.Payment{EventID: event.ID, StaffID: staff.ID, AgreedAmount: 500}
	db.Create(&payment)
	db.Create(&models.PaymentTransaction{PaymentID: payment.ID, Amount: 200, Date: "2025-06-11"})
	db.Create(&models.ClientPaymentRecord{BookingID: booking.ID, Status: models.ClientPaymentReceived, Amount: 2000, Date: "2025-06-01"})
	db.Create(&models.StaffPaymentRecord{StaffID: staff.ID, BookingID: booking.ID, Type: models.StaffPaymentAgreed, Amount: 500, Date: "2025-06-01"})

	opts := DeletionOptions{ClientPayments: true, StaffAgreedPayments: true, StaffMadePayments: true}
	err := ExecuteBookingDeletion(db, booking.ID, opts)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.Event{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.StaffAssignment{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.Workflow{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.Payment{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.PaymentTransaction{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.ClientPaymentRecord{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.StaffPaymentRecord{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// Staff dan client tidak pernah ikut terhapus.
	db.Model(&models.Staff{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Client{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestExecuteBookingDeletionKeepsLedgersWhenNotSelected(t *testing.T) {
	db := setupDeletionDB(t)

	client := models.Client{Name: "Meera"}
	db.Create(&client)
	booking := models.Booking{ClientID: client.ID}
	db.Create(&booking)
	db.Create(&models.ClientPaymentRecord{BookingID: booking.ID, Status: models.ClientPaymentReceived, Amount: 900, Date: "2025-06-01"})
	db.Create(&models.StaffPaymentRecord{StaffID: 1, BookingID: booking.ID, Type: models.StaffPaymentMade, Amount: 300, Date: "2025-06-01"})

	err := ExecuteBookingDeletion(db, booking.ID, DeletionOptions{})
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.ClientPaymentRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.StaffPaymentRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
