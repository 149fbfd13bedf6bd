package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/hub"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type StaffPaymentController struct {
	DB *gorm.DB
}

func NewStaffPaymentController(db *gorm.DB) *StaffPaymentController {
	return &StaffPaymentController{DB: db}
}

// CreateStaffPayment -> mencatat komitmen (agreed) atau pembayaran (made)
// untuk staff di level booking
func (sp *StaffPaymentController) CreateStaffPayment(c *gin.Context) {
	var req struct {
		StaffID   uint    `json:"staff_id" binding:"required"`
		BookingID uint    `json:"booking_id" binding:"required"`
		EventID   *uint   `json:"event_id"`
		Type      string  `json:"type" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Date      string  `json:"date"`
		Notes     string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Type != models.StaffPaymentAgreed && req.Type != models.StaffPaymentMade {
		utils.RespondError(c, http.StatusBadRequest, errors.New("type must be agreed or made"))
		return
	}
	if req.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("amount must be positive"))
		return
	}
	if req.Date == "" {
		req.Date = services.Today()
	}

	var staff models.Staff
	if err := sp.DB.First(&staff, req.StaffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	var booking models.Booking
	if err := sp.DB.First(&booking, req.BookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if req.EventID != nil {
		var event models.Event
		if err := sp.DB.First(&event, *req.EventID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		if event.BookingID != req.BookingID {
			utils.RespondError(c, http.StatusBadRequest, errors.New("event does not belong to booking"))
			return
		}
	}

	record := models.StaffPaymentRecord{
		StaffID:   req.StaffID,
		BookingID: req.BookingID,
		EventID:   req.EventID,
		Type:      req.Type,
		Amount:    req.Amount,
		Date:      req.Date,
		Notes:     req.Notes,
	}

	if err := sp.DB.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(record)
	utils.InfoLogger.Printf("Staff payment %s (%s) recorded for staff %d booking %d",
		utils.FormatCurrencyINR(record.Amount), record.Type, record.StaffID, record.BookingID)
	utils.RespondJSON(c, http.StatusCreated, "Staff payment recorded", record)
}

// GetStaffPayments -> daftar record, filter staff_id / booking_id / type
func (sp *StaffPaymentController) GetStaffPayments(c *gin.Context) {
	query := sp.DB.Preload("Staff").Preload("Booking")
	if staffID := c.Query("staff_id"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}
	if recordType := c.Query("type"); recordType != "" {
		query = query.Where("type = ?", recordType)
	}

	var records []models.StaffPaymentRecord
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of staff payments", records)
}

// UpdateStaffPayment -> koreksi record
func (sp *StaffPaymentController) UpdateStaffPayment(c *gin.Context) {
	recordID := c.Param("record_id")
	var body struct {
		Type   *string  `json:"type"`
		Amount *float64 `json:"amount"`
		Date   *string  `json:"date"`
		Notes  *string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var record models.StaffPaymentRecord
	if err := sp.DB.First(&record, recordID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Type != nil {
		if *body.Type != models.StaffPaymentAgreed && *body.Type != models.StaffPaymentMade {
			utils.RespondError(c, http.StatusBadRequest, errors.New("type must be agreed or made"))
			return
		}
		record.Type = *body.Type
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
	if body.Notes != nil {
		record.Notes = *body.Notes
	}

	if err := sp.DB.Save(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(record)
	utils.RespondJSON(c, http.StatusOK, "Staff payment updated", record)
}

// DeleteStaffPayment -> menghapus satu record
func (sp *StaffPaymentController) DeleteStaffPayment(c *gin.Context) {
	recordID := c.Param("record_id")
	var record models.StaffPaymentRecord
	if err := sp.DB.First(&record, recordID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := sp.DB.Delete(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Staff payment deleted", gin.H{"id": record.ID})
}

// GetPendingTotal -> total kewajiban belum dibayar, global atau per staff
func (sp *StaffPaymentController) GetPendingTotal(c *gin.Context) {
	var records []models.StaffPaymentRecord
	if err := sp.DB.Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var total float64
	if staffParam := c.Query("staff_id"); staffParam != "" {
		staffID, err := strconv.ParseUint(staffParam, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid staff_id"))
			return
		}
		total = services.StaffPendingFor(uint(staffID), records)
	} else {
		total = services.StaffPending(records)
	}

	utils.RespondJSON(c, http.StatusOK, "Pending staff payments", gin.H{
		"pending":           total,
		"pending_formatted": utils.FormatCurrencyINR(total),
	})
}
