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

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

type newClientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type eventInput struct {
	EventDate             string `json:"event_date" binding:"required"`
	TimeSlot              string `json:"time_slot" binding:"required"`
	Venue                 string `json:"venue"`
	RequiredPhotographers int    `json:"required_photographers"`
	RequiredVideographers int    `json:"required_videographers"`
	RequiredDroneOps      int    `json:"required_drone_operators"`
	RequiredEditors       int    `json:"required_editors"`
}

// CreateBooking -> form booking mendukung pilih client lama atau buat baru.
// Events bisa dikirim sekalian (multi-event booking).
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		ClientID      *uint           `json:"client_id"`  // pakai client yang sudah ada
		NewClient     *newClientInput `json:"new_client"` // atau buat client baru
		Name          string          `json:"name"`
		PackageAmount *float64        `json:"package_amount"`
		Notes         string          `json:"notes"`
		Events        []eventInput    `json:"events"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.ClientID == nil && req.NewClient == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("either client_id or new_client is required"))
		return
	}

	for _, ev := range req.Events {
		if !models.ValidTimeSlot(ev.TimeSlot) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid time_slot: "+ev.TimeSlot))
			return
		}
	}

	var booking models.Booking
	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		clientID := uint(0)
		if req.ClientID != nil {
			var client models.Client
			if err := tx.First(&client, *req.ClientID).Error; err != nil {
				return err
			}
			clientID = client.ID
		} else {
			client := models.Client{Name: req.NewClient.Name, Phone: req.NewClient.Phone}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
			clientID = client.ID
		}

		booking = models.Booking{
			ClientID:      clientID,
			Name:          req.Name,
			PackageAmount: req.PackageAmount,
			Notes:         req.Notes,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		for _, ev := range req.Events {
			event := models.Event{
				BookingID:             booking.ID,
				EventDate:             ev.EventDate,
				TimeSlot:              ev.TimeSlot,
				Venue:                 ev.Venue,
				RequiredPhotographers: ev.RequiredPhotographers,
				RequiredVideographers: ev.RequiredVideographers,
				RequiredDroneOps:      ev.RequiredDroneOps,
				RequiredEditors:       ev.RequiredEditors,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	bc.DB.Preload("Client").Preload("Events").First(&booking, booking.ID)

	hub.BroadcastBookingUpdate(booking)
	utils.InfoLogger.Printf("New booking created: %d (client=%d, events=%d)", booking.ID, booking.ClientID, len(req.Events))
	utils.RespondJSON(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetAllBookings -> daftar booking dengan status lifecycle + progres workflow
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	query := bc.DB.Preload("Client").Preload("Events").Preload("Workflows")
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	today := services.Today()
	type bookingRow struct {
		models.Booking
		Status   string                  `json:"status"`
		Progress services.ProgressCounts `json:"progress"`
		Percent  int                     `json:"percent"`
	}

	rows := make([]bookingRow, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		progress := services.SumProgress(b.Workflows)
		rows = append(rows, bookingRow{
			Booking:  b,
			Status:   services.DeriveBookingStatus(b.Events, b.Workflows, today),
			Progress: progress,
			Percent:  progress.OverallPercent(),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of bookings", rows)
}

// GetBookingByID -> detail satu booking
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	bookingID := c.Param("booking_id")
	var booking models.Booking
	if err := bc.DB.Preload("Client").
		Preload("Events").
		Preload("Events.Assignments").
		Preload("Events.Assignments.Staff").
		Preload("Workflows").
		First(&booking, bookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	progress := services.SumProgress(booking.Workflows)
	utils.RespondJSON(c, http.StatusOK, "Booking detail", gin.H{
		"booking":  booking,
		"status":   services.DeriveBookingStatus(booking.Events, booking.Workflows, services.Today()),
		"progress": progress,
		"percent":  progress.OverallPercent(),
	})
}

// UpdateBooking -> update sebagian field
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	var body struct {
		Name          *string  `json:"name"`
		PackageAmount *float64 `json:"package_amount"`
		Notes         *string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, bookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		booking.Name = *body.Name
	}
	if body.PackageAmount != nil {
		booking.PackageAmount = body.PackageAmount
	}
	if body.Notes != nil {
		booking.Notes = *body.Notes
	}

	if err := bc.DB.Save(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastBookingUpdate(booking)
	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

// GetDeletionImpact -> ringkasan dampak sebelum konfirmasi hapus.
// Options dikirim lewat query params (default false).
func (bc *BookingController) GetDeletionImpact(c *gin.Context) {
	idStr := c.Param("booking_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	opts := deletionOptionsFromQuery(c)

	snap, err := services.LoadSnapshot(bc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	impact := services.PlanBookingDeletion(snap, uint(id), opts)
	utils.RespondJSON(c, http.StatusOK, "Booking deletion impact", impact)
}

// DeleteBooking -> eksekusi penghapusan berantai sesuai options di body.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	idStr := c.Param("booking_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var opts services.DeletionOptions
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}
	opts.Normalize()

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := services.ExecuteBookingDeletion(bc.DB, uint(id), opts); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastBookingDelete(gin.H{"booking_id": id})
	utils.InfoLogger.Printf("Booking %d deleted (options=%+v)", id, opts)
	utils.RespondJSON(c, http.StatusOK, "Booking deleted", gin.H{"id": id})
}

func deletionOptionsFromQuery(c *gin.Context) services.DeletionOptions {
	boolQuery := func(key string) bool {
		return c.Query(key) == "true" || c.Query(key) == "1"
	}
	opts := services.DeletionOptions{
		ClientPayments:      boolQuery("client_payments"),
		StaffAgreedPayments: boolQuery("staff_agreed_payments"),
		StaffMadePayments:   boolQuery("staff_made_payments"),
		Events:              boolQuery("events"),
		Booking:             true,
	}
	opts.Normalize()
	return opts
}
