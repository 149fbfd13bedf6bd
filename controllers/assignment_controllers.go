package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/hub"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

// CreateAssignment -> menugaskan staff ke event. Role assignment default
// mengikuti job role staff tapi boleh di-override (mengisi slot lain).
func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
	var req struct {
		EventID uint   `json:"event_id" binding:"required"`
		StaffID uint   `json:"staff_id" binding:"required"`
		Role    string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var event models.Event
	if err := ac.DB.First(&event, req.EventID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var staff models.Staff
	if err := ac.DB.First(&staff, req.StaffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	role := req.Role
	if role == "" {
		role = staff.Role
	}
	if !models.ValidStaffRole(role) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid role: "+role))
		return
	}

	assignment := models.StaffAssignment{
		EventID: req.EventID,
		StaffID: req.StaffID,
		Role:    role,
	}

	if err := ac.DB.Create(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Peringatkan kalau assignment baru menciptakan double-booking.
	warnings := ac.conflictWarnings(staff.ID, event)

	hub.BroadcastAssignmentUpdate(assignment)
	utils.InfoLogger.Printf("Staff %d assigned to event %d as %s", staff.ID, event.ID, role)
	utils.RespondJSON(c, http.StatusCreated, "Staff assigned", gin.H{
		"assignment": assignment,
		"warnings":   warnings,
	})
}

// conflictWarnings memeriksa apakah staff sekarang double-booked pada
// tanggal+slot event yang baru saja diisi.
func (ac *AssignmentController) conflictWarnings(staffID uint, event models.Event) []services.Conflict {
	var events []models.Event
	if err := ac.DB.Where("event_date = ? AND time_slot = ?", event.EventDate, event.TimeSlot).
		Find(&events).Error; err != nil {
		return nil
	}

	var assignments []models.StaffAssignment
	if err := ac.DB.Find(&assignments).Error; err != nil {
		return nil
	}

	all := services.DetectConflicts(events, assignments)
	mine := make([]services.Conflict, 0)
	for _, conflict := range all {
		if conflict.StaffID == staffID {
			mine = append(mine, conflict)
		}
	}
	return mine
}

// MarkDataReceived -> toggle flag data diterima dari staff lapangan
func (ac *AssignmentController) MarkDataReceived(c *gin.Context) {
	assignmentID := c.Param("assignment_id")
	var body struct {
		DataReceived bool   `json:"data_received"`
		By           string `json:"by"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var assignment models.StaffAssignment
	if err := ac.DB.First(&assignment, assignmentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	assignment.DataReceived = body.DataReceived
	if body.DataReceived {
		now := time.Now()
		assignment.DataReceivedAt = &now
		assignment.DataReceivedBy = body.By
	} else {
		assignment.DataReceivedAt = nil
		assignment.DataReceivedBy = ""
	}

	if err := ac.DB.Save(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastAssignmentUpdate(assignment)
	utils.RespondJSON(c, http.StatusOK, "Assignment data-received updated", assignment)
}

// DeleteAssignment -> melepas staff dari event
func (ac *AssignmentController) DeleteAssignment(c *gin.Context) {
	assignmentID := c.Param("assignment_id")
	var assignment models.StaffAssignment

	if err := ac.DB.First(&assignment, assignmentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := ac.DB.Delete(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastAssignmentUpdate(gin.H{"deleted": assignment.ID})
	utils.RespondJSON(c, http.StatusOK, "Assignment removed", gin.H{"id": assignment.ID})
}
