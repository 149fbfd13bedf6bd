package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/hub"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type ClientPaymentController struct {
	DB *gorm.DB
}

func NewClientPaymentController(db *gorm.DB) *ClientPaymentController {
	return &ClientPaymentController{DB: db}
}

// CreateClientPayment -> mencatat pembayaran client (agreed / received)
func (cp *ClientPaymentController) CreateClientPayment(c *gin.Context) {
	var req struct {
		BookingID uint    `json:"booking_id" binding:"required"`
		Status    string  `json:"status" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Date      string  `json:"date"`
		Method    string  `json:"method"`
		Notes     string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status != models.ClientPaymentAgreed && req.Status != models.ClientPaymentReceived {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status must be agreed or received"))
		return
	}
	if req.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("amount must be positive"))
		return
	}
	if req.Date == "" {
		req.Date = services.Today()
	}

	var booking models.Booking
	if err := cp.DB.First(&booking, req.BookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	record := models.ClientPaymentRecord{
		BookingID: req.BookingID,
		Status:    req.Status,
		Amount:    req.Amount,
		Date:      req.Date,
		Method:    req.Method,
		Notes:     req.Notes,
	}

	if err := cp.DB.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(record)
	utils.InfoLogger.Printf("Client payment %s (%s) recorded for booking %d",
		utils.FormatCurrencyINR(record.Amount), record.Status, record.BookingID)
	utils.RespondJSON(c, http.StatusCreated, "Client payment recorded", record)
}

// GetClientPayments -> daftar record, filter opsional booking_id / status
func (cp *ClientPaymentController) GetClientPayments(c *gin.Context) {
	query := cp.DB.Preload("Booking")
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var records []models.ClientPaymentRecord
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of client payments", records)
}

// UpdateClientPayment -> koreksi record (jumlah, tanggal, status, catatan)
func (cp *ClientPaymentController) UpdateClientPayment(c *gin.Context) {
	recordID := c.Param("record_id")
	var body struct {
		Status *string  `json:"status"`
		Amount *float64 `json:"amount"`
		Date   *string  `json:"date"`
		Method *string  `json:"method"`
		Notes  *string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var record models.ClientPaymentRecord
	if err := cp.DB.First(&record, recordID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Status != nil {
		if *body.Status != models.ClientPaymentAgreed && *body.Status != models.ClientPaymentReceived {
			utils.RespondError(c, http.StatusBadRequest, errors.New("status must be agreed or received"))
			return
		}
		record.Status = *body.Status
	}
	if body.Amount != nil {
		if *body.Amount <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("amount must be positive"))
			return
		}
		record.Amount = *body.Amount
	}
	if body.Date != nil {
		record.Date = *body.Date
	}
	if body.Method != nil {
		record.Method = *body.Method
	}
	if body.Notes != nil {
		record.Notes = *body.Notes
	}

	if err := cp.DB.Save(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(record)
	utils.RespondJSON(c, http.StatusOK, "Client payment updated", record)
}

// DeleteClientPayment -> menghapus satu record
func (cp *ClientPaymentController) DeleteClientPayment(c *gin.Context) {
	recordID := c.Param("record_id")
	var record models.ClientPaymentRecord
	if err := cp.DB.First(&record, recordID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := cp.DB.Delete(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client payment deleted", gin.H{"id": record.ID})
}

// GetOutstanding -> total piutang client, opsional per booking
func (cp *ClientPaymentController) GetOutstanding(c *gin.Context) {
	query := cp.DB.Model(&models.Booking{})
	recordQuery := cp.DB.Model(&models.ClientPaymentRecord{})
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("id = ?", bookingID)
		recordQuery = recordQuery.Where("booking_id = ?", bookingID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var records []models.ClientPaymentRecord
	if err := recordQuery.Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	outstanding := services.ClientOutstanding(bookings, records)
	utils.RespondJSON(c, http.StatusOK, "Client outstanding", gin.H{
		"outstanding":           outstanding,
		"outstanding_formatted": utils.FormatCurrencyINR(outstanding),
	})
}

// GetOverdueClients -> booking dengan pembayaran client terlambat
func (cp *ClientPaymentController) GetOverdueClients(c *gin.Context) {
	var bookings []models.Booking
	if err := cp.DB.Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var events []models.Event
	if err := cp.DB.Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var records []models.ClientPaymentRecord
	if err := cp.DB.Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	overdue := services.DetectOverdueClientBookings(bookings, events, records, services.Today())
	utils.RespondJSON(c, http.StatusOK, "Overdue client bookings", overdue)
}
