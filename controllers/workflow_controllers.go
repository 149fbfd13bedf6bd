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

type WorkflowController struct {
	DB *gorm.DB
}

func NewWorkflowController(db *gorm.DB) *WorkflowController {
	return &WorkflowController{DB: db}
}

// CreateWorkflow -> membuat workflow baru untuk booking (level booking atau
// per event kalau event_id diisi). Step map diinisialisasi dari enumerasi.
func (wc *WorkflowController) CreateWorkflow(c *gin.Context) {
	var req struct {
		BookingID uint  `json:"booking_id" binding:"required"`
		EventID   *uint `json:"event_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var booking models.Booking
	if err := wc.DB.First(&booking, req.BookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.EventID != nil {
		var event models.Event
		if err := wc.DB.First(&event, *req.EventID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		if event.BookingID != req.BookingID {
			utils.RespondError(c, http.StatusBadRequest, errors.New("event does not belong to booking"))
			return
		}
	}

	workflow := models.Workflow{
		BookingID:        req.BookingID,
		EventID:          req.EventID,
		StillWorkflow:    emptySteps(models.StillSteps),
		ReelWorkflow:     emptySteps(models.ReelSteps),
		VideoWorkflow:    emptySteps(models.VideoSteps),
		PortraitWorkflow: emptySteps(models.PortraitSteps),
	}

	if err := wc.DB.Create(&workflow).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastWorkflowUpdate(workflow)
	utils.InfoLogger.Printf("Workflow %d created for booking %d", workflow.ID, workflow.BookingID)
	utils.RespondJSON(c, http.StatusCreated, "Workflow created", workflow)
}

func emptySteps(keys []string) models.StepMap {
	m := make(models.StepMap, len(keys))
	for _, k := range keys {
		m[k] = models.WorkflowStep{}
	}
	return m
}

// GetWorkflowsByBooking -> seluruh workflow satu booking + rollup progres
func (wc *WorkflowController) GetWorkflowsByBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var workflows []models.Workflow
	if err := wc.DB.Where("booking_id = ?", bookingID).Find(&workflows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rollup := services.SumProgress(workflows)
	utils.RespondJSON(c, http.StatusOK, "Workflows for booking", gin.H{
		"workflows": workflows,
		"progress":  rollup,
		"percent":   rollup.OverallPercent(),
	})
}

// GetWorkflowByID -> satu workflow + progres per kategori
func (wc *WorkflowController) GetWorkflowByID(c *gin.Context) {
	workflowID := c.Param("workflow_id")
	var workflow models.Workflow
	if err := wc.DB.First(&workflow, workflowID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	progress := services.Progress(&workflow)
	utils.RespondJSON(c, http.StatusOK, "Workflow detail", gin.H{
		"workflow": workflow,
		"progress": progress,
		"percent":  progress.OverallPercent(),
	})
}

// UpdateWorkflowStep -> update satu step (completed / notes / not_applicable)
func (wc *WorkflowController) UpdateWorkflowStep(c *gin.Context) {
	workflowID := c.Param("workflow_id")
	var body struct {
		Category      string  `json:"category" binding:"required"`
		Step          string  `json:"step" binding:"required"`
		Completed     *bool   `json:"completed"`
		Notes         *string `json:"notes"`
		NotApplicable *bool   `json:"not_applicable"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var workflow models.Workflow
	if err := wc.DB.First(&workflow, workflowID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	steps := workflow.StepsOf(body.Category)
	if steps == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown category: "+body.Category))
		return
	}

	step := steps[body.Step]
	if body.Completed != nil {
		step.Completed = *body.Completed
		if *body.Completed {
			now := time.Now()
			step.CompletedAt = &now
			step.UpdatedBy = c.GetString("role")
		} else {
			step.CompletedAt = nil
		}
	}
	if body.Notes != nil {
		step.Notes = *body.Notes
	}
	if body.NotApplicable != nil {
		step.NotApplicable = *body.NotApplicable
	}

	if err := workflow.SetStep(body.Category, body.Step, step); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := wc.DB.Save(&workflow).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	progress := services.Progress(&workflow)
	hub.BroadcastWorkflowUpdate(gin.H{
		"workflow": workflow,
		"progress": progress,
	})
	utils.RespondJSON(c, http.StatusOK, "Workflow step updated", gin.H{
		"workflow": workflow,
		"progress": progress,
		"percent":  progress.OverallPercent(),
	})
}

// DeleteWorkflow -> menghapus satu workflow
func (wc *WorkflowController) DeleteWorkflow(c *gin.Context) {
	workflowID := c.Param("workflow_id")
	var workflow models.Workflow

	if err := wc.DB.First(&workflow, workflowID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := wc.DB.Delete(&workflow).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Workflow deleted", gin.H{"id": workflow.ID})
}

// GetWorkflowSchema -> enumerasi step per kategori untuk form frontend
func (wc *WorkflowController) GetWorkflowSchema(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Workflow step schema", gin.H{
		models.CategoryStill:    models.StillSteps,
		models.CategoryReel:     models.ReelSteps,
		models.CategoryVideo:    models.VideoSteps,
		models.CategoryPortrait: models.PortraitSteps,
	})
}
