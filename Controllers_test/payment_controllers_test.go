package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/studio-app/controllers"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/utils"
)

func setupTestDBForPayments() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Client{},
		&models.Booking{},
		&models.Event{},
		&models.Staff{},
		&models.Payment{},
		&models.PaymentTransaction{},
	)
	if err != nil {
		panic(err)
	}
	// Seed: satu booking dengan satu event yang sudah lewat dan satu staff.
	client := models.Client{Name: "Client1", Phone: "900000010"}
	db.Create(&client)
	booking := models.Booking{ClientID: client.ID}
	db.Create(&booking)
	db.Create(&models.Event{BookingID: booking.ID, EventDate: "2025-01-10", TimeSlot: "morning"})
	db.Create(&models.Staff{Name: "Ravi", Role: models.RolePhotographer, Status: models.StaffActive})
	return db
}

func setupPaymentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	paymentCtrl := controllers.NewPaymentController(db)
	router.POST("/payments", paymentCtrl.CreatePayment)
	router.GET("/payments", paymentCtrl.GetAllPayments)
	router.GET("/payments/overdue", paymentCtrl.GetOverduePayments)
	router.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)
	router.POST("/payments/:payment_id/transactions", paymentCtrl.AddTransaction)
	return router
}

func createPaymentTest(t *testing.T, router *gin.Engine, agreed float64) uint {
	payload := map[string]interface{}{
		"event_id":      1,
		"staff_id":      1,
		"agreed_amount": agreed,
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestCreatePaymentWithDerivedStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments()
	router := setupPaymentRouter(db)

	createPaymentTest(t, router, 1000)

	// Event sudah lama lewat dan belum dibayar: status overdue.
	req, _ := http.NewRequest("GET", "/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	rows := resp["data"].([]interface{})
	assert.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, models.PaymentOverdue, row["status"])
	assert.EqualValues(t, 1000, row["remaining"])
}

func TestCreatePaymentDuplicateRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments()
	router := setupPaymentRouter(db)

	createPaymentTest(t, router, 1000)

	payload := map[string]interface{}{
		"event_id":      1,
		"staff_id":      1,
		"agreed_amount": 500,
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddTransactionUpdatesAmountPaid(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments()
	router := setupPaymentRouter(db)

	id := createPaymentTest(t, router, 1000)

	payload := map[string]interface{}{
		"amount": 400,
		"date":   "2025-01-15",
		"method": "transfer",
	}
	payloadBytes, _ := json.Marshal(payload)
	url := fmt.Sprintf("/payments/%d/transactions", id)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	assert.NoError(t, db.First(&payment, id).Error)
	assert.Equal(t, 400.0, payment.AmountPaid)

	var txnCount int64
	db.Model(&models.PaymentTransaction{}).Where("payment_id = ?", id).Count(&txnCount)
	assert.EqualValues(t, 1, txnCount)

	// Lunasi sisa: status berubah jadi paid.
	payload["amount"] = 600
	payloadBytes, _ = json.Marshal(payload)
	req, _ = http.NewRequest("POST", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	paymentData := data["payment"].(map[string]interface{})
	assert.Equal(t, models.PaymentPaid, paymentData["status"])
}

func TestAddTransactionRejectsNonPositiveAmount(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments()
	router := setupPaymentRouter(db)

	id := createPaymentTest(t, router, 1000)

	payload := map[string]interface{}{"amount": -50}
	payloadBytes, _ := json.Marshal(payload)
	url := fmt.Sprintf("/payments/%d/transactions", id)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOverduePayments(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments()
	router := setupPaymentRouter(db)

	createPaymentTest(t, router, 1000)

	req, _ := http.NewRequest("GET", "/payments/overdue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	rows := resp["data"].([]interface{})
	assert.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.EqualValues(t, 1000, row["remaining"])
	assert.Equal(t, "2025-01-10", row["event_date"])
}
