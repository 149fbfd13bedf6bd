package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/studio-app/controllers"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/utils"
)

func setupTestDBForBookings() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
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
		&models.Expense{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	bookingCtrl := controllers.NewBookingController(db)
	router.POST("/bookings", bookingCtrl.CreateBooking)
	router.GET("/bookings", bookingCtrl.GetAllBookings)
	router.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	router.GET("/bookings/:booking_id/deletion-impact", bookingCtrl.GetDeletionImpact)
	router.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)
	return router
}

func TestCreateBookingWithNewClientAndEvents(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings()
	router := setupBookingRouter(db)

	payload := map[string]interface{}{
		"new_client": map[string]string{
			"name":  "Ananya",
			"phone": "9876500001",
		},
		"name":           "Wedding Package",
		"package_amount": 150000,
		"events": []map[string]interface{}{
			{
				"event_date":             "2025-06-10",
				"time_slot":              "morning",
				"venue":                  "City Hall",
				"required_photographers": 2,
			},
			{
				"event_date": "2025-06-11",
				"time_slot":  "evening",
			},
		},
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking created successfully", resp["message"])
	data := resp["data"].(map[string]interface{})
	events := data["events"].([]interface{})
	assert.Len(t, events, 2)

	// Client ikut terbuat dalam transaksi yang sama.
	var clientCount int64
	db.Model(&models.Client{}).Count(&clientCount)
	assert.EqualValues(t, 1, clientCount)
}

func TestCreateBookingRejectsInvalidTimeSlot(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings()
	router := setupBookingRouter(db)

	payload := map[string]interface{}{
		"new_client": map[string]string{"name": "X", "phone": "1"},
		"events": []map[string]interface{}{
			{"event_date": "2025-06-10", "time_slot": "midnight"},
		},
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tidak ada sisa data setengah jadi.
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateBookingRequiresClient(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings()
	router := setupBookingRouter(db)

	payload := map[string]interface{}{"name": "No client"}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllBookingsIncludesDerivedStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings()
	router := setupBookingRouter(db)

	client := models.Client{Name: "Rahul", Phone: "9876500002"}
	db.Create(&client)
	booking := models.Booking{ClientID: client.ID, Name: "Engagement"}
	db.Create(&booking)
	db.Create(&models.Event{BookingID: booking.ID, EventDate: "2099-01-01", TimeSlot: "morning"})

	req, _ := http.NewRequest("GET", "/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	rows := resp["data"].([]interface{})
	assert.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, models.BookingStatusShootScheduled, row["status"])
}

func TestDeletionImpactAndDelete(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings()
	router := setupBookingRouter(db)

	client := models.Client{Name: "Priya", Phone: "9876500003"}
	db.Create(&client)
	booking := models.Booking{ClientID: client.ID}
	db.Create(&booking)
	event := models.Event{BookingID: booking.ID, EventDate: "2025-06-10", TimeSlot: "morning"}
	db.Create(&event)
	db.Create(&models.ClientPaymentRecord{BookingID: booking.ID, Status: models.ClientPaymentReceived, Amount: 5000, Date: "2025-06-01"})

	idStr := strconv.Itoa(int(booking.ID))

	// Impact dulu: event pasti masuk, ledger client tidak karena tidak diminta.
	req, _ := http.NewRequest("GET", "/bookings/"+idStr+"/deletion-impact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var impactResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &impactResp))
	impact := impactResp["data"].(map[string]interface{})
	assert.EqualValues(t, 1, impact["events"])
	assert.EqualValues(t, 0, impact["client_payments"])
	assert.NotEmpty(t, impact["warnings"])

	// Hapus beneran, minta ledger client ikut.
	body, _ := json.Marshal(map[string]bool{"client_payments": true})
	req, _ = http.NewRequest("DELETE", "/bookings/"+idStr, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.Event{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&models.ClientPaymentRecord{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
