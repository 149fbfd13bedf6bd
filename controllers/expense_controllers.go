package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// CreateExpense -> mencatat pengeluaran studio (umum atau terikat booking)
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var req struct {
		Type          string  `json:"type"`
		BookingID     *uint   `json:"booking_id"`
		Amount        float64 `json:"amount" binding:"required"`
		Description   string  `json:"description" binding:"required"`
		Date          string  `json:"date"`
		PaymentMethod string  `json:"payment_method"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Type == "" {
		req.Type = models.ExpenseGeneral
	}
	if req.Type != models.ExpenseGeneral && req.Type != models.ExpenseBooking {
		utils.RespondError(c, http.StatusBadRequest, errors.New("type must be general or booking"))
		return
	}
	if req.Type == models.ExpenseBooking && req.BookingID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("booking_id is required for booking expenses"))
		return
	}
	if req.Type == models.ExpenseGeneral {
		req.BookingID = nil
	}
	if req.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("amount must be positive"))
		return
	}
	if req.Date == "" {
		req.Date = services.Today()
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	if req.BookingID != nil {
		var booking models.Booking
		if err := ec.DB.First(&booking, *req.BookingID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
	}

	expense := models.Expense{
		Type:          req.Type,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
	}

	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Expense %s recorded (%s)",
		utils.FormatCurrencyINR(expense.Amount), expense.Type)
	utils.RespondJSON(c, http.StatusCreated, "Expense recorded", expense)
}

// GetAllExpenses -> daftar pengeluaran, filter type / booking_id / rentang tanggal
func (ec *ExpenseController) GetAllExpenses(c *gin.Context) {
	query := ec.DB.Preload("Booking")
	if expenseType := c.Query("type"); expenseType != "" {
		query = query.Where("type = ?", expenseType)
	}
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var expenses []models.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	utils.RespondJSON(c, http.StatusOK, "List of expenses", gin.H{
		"expenses":        expenses,
		"total":           total,
		"total_formatted": utils.FormatCurrencyINR(total),
	})
}

// UpdateExpense -> koreksi pengeluaran
func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	expenseID := c.Param("expense_id")
	var body struct {
		Amount        *float64 `json:"amount"`
		Description   *string  `json:"description"`
		Date          *string  `json:"date"`
		PaymentMethod *string  `json:"payment_method"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var expense models.Expense
	if err := ec.DB.First(&expense, expenseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Amount != nil {
		if *body.Amount <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("amount must be positive"))
			return
		}
		expense.Amount = *body.Amount
	}
	if body.Description != nil {
		expense.Description = *body.Description
	}
	if body.Date != nil {
		expense.Date = *body.Date
	}
	if body.PaymentMethod != nil {
		expense.PaymentMethod = *body.PaymentMethod
	}

	if err := ec.DB.Save(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Expense updated", expense)
}

// DeleteExpense -> menghapus satu pengeluaran
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	expenseID := c.Param("expense_id")
	var expense models.Expense
	if err := ec.DB.First(&expense, expenseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := ec.DB.Delete(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Expense deleted", gin.H{"id": expense.ID})
}
