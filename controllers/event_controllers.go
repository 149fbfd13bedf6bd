package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/hub"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// CreateEvent -> menambahkan event ke booking yang sudah ada
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req struct {
		BookingID uint `json:"booking_id" binding:"required"`
		eventInput
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTimeSlot(req.TimeSlot) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid time_slot: "+req.TimeSlot))
		return
	}

	var booking models.Booking
	if err := ec.DB.First(&booking, req.BookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	event := models.Event{
		BookingID:             req.BookingID,
		EventDate:             req.EventDate,
		TimeSlot:              req.TimeSlot,
		Venue:                 req.Venue,
		RequiredPhotographers: req.RequiredPhotographers,
		RequiredVideographers: req.RequiredVideographers,
		RequiredDroneOps:      req.RequiredDroneOps,
		RequiredEditors:       req.RequiredEditors,
	}

	if err := ec.DB.Create(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastEventUpdate(event)
	utils.InfoLogger.Printf("New event created: %d (%s %s)", event.ID, event.EventDate, event.TimeSlot)
	utils.RespondJSON(c, http.StatusCreated, "Event created successfully", event)
}

// GetAllEvents -> seluruh event, optional filter booking_id / date range
func (ec *EventController) GetAllEvents(c *gin.Context) {
	var events []models.Event
	query := ec.DB.Preload("Assignments").Preload("Assignments.Staff")
	if bookingID := c.Query("booking_id"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("event_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("event_date <= ?", to)
	}
	if err := query.Order("event_date ASC").Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of events", events)
}

// GetCalendar -> events untuk satu bulan (format month=YYYY-MM), feed kalender
func (ec *EventController) GetCalendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("month must be in YYYY-MM format"))
		return
	}

	var events []models.Event
	if err := ec.DB.Preload("Booking").Preload("Booking.Client").
		Preload("Assignments").Preload("Assignments.Staff").
		Where("event_date LIKE ?", month+"%").
		Order("event_date ASC").
		Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Calendar events for "+month, events)
}

// GetEventByID -> detail satu event
func (ec *EventController) GetEventByID(c *gin.Context) {
	eventID := c.Param("event_id")
	var event models.Event
	if err := ec.DB.Preload("Booking").
		Preload("Assignments").
		Preload("Assignments.Staff").
		First(&event, eventID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Event detail", event)
}

// UpdateEvent -> update sebagian field
func (ec *EventController) UpdateEvent(c *gin.Context) {
	eventID := c.Param("event_id")
	var body struct {
		EventDate             *string `json:"event_date"`
		TimeSlot              *string `json:"time_slot"`
		Venue                 *string `json:"venue"`
		RequiredPhotographers *int    `json:"required_photographers"`
		RequiredVideographers *int    `json:"required_videographers"`
		RequiredDroneOps      *int    `json:"required_drone_operators"`
		RequiredEditors       *int    `json:"required_editors"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var event models.Event
	if err := ec.DB.First(&event, eventID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.EventDate != nil {
		event.EventDate = *body.EventDate
	}
	if body.TimeSlot != nil {
		if !models.ValidTimeSlot(*body.TimeSlot) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid time_slot: "+*body.TimeSlot))
			return
		}
		event.TimeSlot = *body.TimeSlot
	}
	if body.Venue != nil {
		event.Venue = *body.Venue
	}
	if body.RequiredPhotographers != nil {
		event.RequiredPhotographers = *body.RequiredPhotographers
	}
	if body.RequiredVideographers != nil {
		event.RequiredVideographers = *body.RequiredVideographers
	}
	if body.RequiredDroneOps != nil {
		event.RequiredDroneOps = *body.RequiredDroneOps
	}
	if body.RequiredEditors != nil {
		event.RequiredEditors = *body.RequiredEditors
	}

	if err := ec.DB.Save(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastEventUpdate(event)
	utils.RespondJSON(c, http.StatusOK, "Event updated", event)
}

// DeleteEvent -> menghapus event beserta assignments-nya
func (ec *EventController) DeleteEvent(c *gin.Context) {
	eventID := c.Param("event_id")
	var event models.Event

	if err := ec.DB.First(&event, eventID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.StaffAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastEventUpdate(gin.H{"deleted": event.ID})
	utils.InfoLogger.Printf("Event %d deleted", event.ID)
	utils.RespondJSON(c, http.StatusOK, "Event deleted", gin.H{"id": event.ID})
}
