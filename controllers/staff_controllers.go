package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// CreateStaff -> menambahkan anggota tim baru
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		Role     string  `json:"role" binding:"required"`
		Phone    string  `json:"phone"`
		Email    *string `json:"email"`
		JoinDate string  `json:"join_date"`
		UserID   *uint   `json:"user_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidStaffRole(req.Role) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid role: "+req.Role))
		return
	}

	staff := models.Staff{
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Email:    req.Email,
		Status:   models.StaffActive,
		JoinDate: req.JoinDate,
		UserID:   req.UserID,
	}

	if err := sc.DB.Create(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New staff created: %s (role=%s)", staff.Name, staff.Role)
	utils.RespondJSON(c, http.StatusCreated, "Staff created successfully", staff)
}

// GetAllStaff -> seluruh staff, optional filter role / status
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	var staffList []models.Staff
	query := sc.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&staffList).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", staffList)
}

// GetStaffByID -> detail satu staff
func (sc *StaffController) GetStaffByID(c *gin.Context) {
	staffID := c.Param("staff_id")
	var staff models.Staff
	if err := sc.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff detail", staff)
}

// UpdateStaff -> update sebagian field (role, status, kontak)
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	staffID := c.Param("staff_id")
	var body struct {
		Name     *string `json:"name"`
		Role     *string `json:"role"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email"`
		Status   *string `json:"status"`
		JoinDate *string `json:"join_date"`
		UserID   *uint   `json:"user_id"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		staff.Name = *body.Name
	}
	if body.Role != nil {
		if !models.ValidStaffRole(*body.Role) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid role: "+*body.Role))
			return
		}
		staff.Role = *body.Role
	}
	if body.Phone != nil {
		staff.Phone = *body.Phone
	}
	if body.Email != nil {
		staff.Email = body.Email
	}
	if body.Status != nil {
		if *body.Status != models.StaffActive && *body.Status != models.StaffInactive {
			utils.RespondError(c, http.StatusBadRequest, errors.New("status must be active or inactive"))
			return
		}
		staff.Status = *body.Status
	}
	if body.JoinDate != nil {
		staff.JoinDate = *body.JoinDate
	}
	if body.UserID != nil {
		staff.UserID = body.UserID
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Staff updated", staff)
}

// DeleteStaff -> menghapus staff dari roster
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	staffID := c.Param("staff_id")
	var staff models.Staff

	if err := sc.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := sc.DB.Delete(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Staff %d deleted", staff.ID)
	utils.RespondJSON(c, http.StatusOK, "Staff deleted", gin.H{"id": staff.ID})
}

// GetMyEvents -> daftar event untuk staff yang login (user ter-link staff)
func (sc *StaffController) GetMyEvents(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}
	userID, _ := userIDInterface.(uint)

	var user models.User
	if err := sc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if user.StaffID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no staff record linked to this user"))
		return
	}

	var assignments []models.StaffAssignment
	if err := sc.DB.Preload("Event").Preload("Event.Booking").Preload("Event.Booking.Client").
		Where("staff_id = ?", *user.StaffID).
		Find(&assignments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My events", assignments)
}

// GetStaffSummary -> ringkasan pembayaran satu staff dari ledger booking
func (sc *StaffController) GetStaffSummary(c *gin.Context) {
	idStr := c.Param("staff_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var records []models.StaffPaymentRecord
	if err := sc.DB.Where("staff_id = ?", id).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	summary := services.SummarizeStaff(uint(id), records)
	utils.RespondJSON(c, http.StatusOK, "Staff payment summary", summary)
}
