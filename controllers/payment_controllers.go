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

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// paymentRow adalah bentuk respons payment dengan status turunan.
// Status tidak pernah tersimpan di tabel, selalu dihitung ulang.
type paymentRow struct {
	models.Payment
	Status    string  `json:"status"`
	Remaining float64 `json:"remaining"`
}

func (pc *PaymentController) withStatus(p models.Payment, eventDate string) paymentRow {
	status := services.PaymentStatus(&p, eventDate, services.Today())
	remaining := p.AgreedAmount - p.AmountPaid
	if remaining < 0 {
		remaining = 0
	}
	return paymentRow{Payment: p, Status: status, Remaining: remaining}
}

// CreatePayment -> menambahkan ledger pembayaran staff untuk satu event
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		EventID      uint    `json:"event_id" binding:"required"`
		StaffID      uint    `json:"staff_id" binding:"required"`
		AgreedAmount float64 `json:"agreed_amount" binding:"required"`
		Notes        string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var event models.Event
	if err := pc.DB.First(&event, req.EventID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	var staff models.Staff
	if err := pc.DB.First(&staff, req.StaffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var existing int64
	pc.DB.Model(&models.Payment{}).
		Where("event_id = ? AND staff_id = ?", req.EventID, req.StaffID).
		Count(&existing)
	if existing > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("payment ledger already exists for this event and staff"))
		return
	}

	payment := models.Payment{
		EventID:      req.EventID,
		StaffID:      req.StaffID,
		AgreedAmount: req.AgreedAmount,
		Notes:        req.Notes,
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(payment)
	utils.InfoLogger.Printf("Payment %d created (event %d, staff %d, agreed %s)",
		payment.ID, payment.EventID, payment.StaffID, utils.FormatCurrencyINR(payment.AgreedAmount))
	utils.RespondJSON(c, http.StatusCreated, "Payment created", pc.withStatus(payment, event.EventDate))
}

// GetAllPayments -> menampilkan semua payment, filter opsional event_id / staff_id / status
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	query := pc.DB.Preload("Staff").Preload("Event").Preload("Transactions")
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if staffID := c.Query("staff_id"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	var payments []models.Payment
	if err := query.Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	wantStatus := c.Query("status")
	rows := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		date := ""
		if p.Event != nil {
			date = p.Event.EventDate
		}
		row := pc.withStatus(p, date)
		if wantStatus != "" && row.Status != wantStatus {
			continue
		}
		rows = append(rows, row)
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", rows)
}

// GetPaymentByID -> detail satu payment + riwayat transaksinya
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var payment models.Payment
	if err := pc.DB.Preload("Staff").Preload("Event").Preload("Transactions").
		First(&payment, paymentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	date := ""
	if payment.Event != nil {
		date = payment.Event.EventDate
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", pc.withStatus(payment, date))
}

// UpdatePayment -> ubah agreed amount atau catatan
func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var body struct {
		AgreedAmount *float64 `json:"agreed_amount"`
		Notes        *string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var payment models.Payment
	if err := pc.DB.Preload("Event").First(&payment, paymentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.AgreedAmount != nil {
		if *body.AgreedAmount < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("agreed_amount cannot be negative"))
			return
		}
		payment.AgreedAmount = *body.AgreedAmount
	}
	if body.Notes != nil {
		payment.Notes = *body.Notes
	}

	if err := pc.DB.Save(&payment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(payment)
	date := ""
	if payment.Event != nil {
		date = payment.Event.EventDate
	}
	utils.RespondJSON(c, http.StatusOK, "Payment updated", pc.withStatus(payment, date))
}

// AddTransaction -> mencatat uang keluar terhadap satu payment.
// AmountPaid di payment induk ikut bertambah dalam satu transaksi DB.
func (pc *PaymentController) AddTransaction(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var req struct {
		Amount float64 `json:"amount" binding:"required"`
		Date   string  `json:"date"`
		Method string  `json:"method"`
		Note   string  `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("amount must be positive"))
		return
	}
	if req.Date == "" {
		req.Date = services.Today()
	}
	if req.Method == "" {
		req.Method = "cash"
	}

	var payment models.Payment
	if err := pc.DB.Preload("Event").First(&payment, paymentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	txn := models.PaymentTransaction{
		PaymentID: payment.ID,
		Amount:    req.Amount,
		Date:      req.Date,
		Method:    req.Method,
		Note:      req.Note,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		payment.AmountPaid += req.Amount
		return tx.Save(&payment).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPaymentUpdate(payment)
	utils.InfoLogger.Printf("Transaction %s recorded for payment %d",
		utils.FormatCurrencyINR(txn.Amount), payment.ID)

	date := ""
	if payment.Event != nil {
		date = payment.Event.EventDate
	}
	utils.RespondJSON(c, http.StatusCreated, "Transaction recorded", gin.H{
		"transaction": txn,
		"payment":     pc.withStatus(payment, date),
	})
}

// DeletePayment -> menghapus payment beserta transaksinya
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var payment models.Payment
	if err := pc.DB.First(&payment, paymentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", payment.ID).
			Delete(&models.PaymentTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&payment).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment deleted", gin.H{"id": payment.ID})
}

// GetOverduePayments -> semua payment staff yang melewati masa tenggang
func (pc *PaymentController) GetOverduePayments(c *gin.Context) {
	var payments []models.Payment
	if err := pc.DB.Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var events []models.Event
	if err := pc.DB.Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	overdue := services.DetectOverdueStaffPayments(payments, events, services.Today())
	utils.RespondJSON(c, http.StatusOK, "Overdue staff payments", overdue)
}
