package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/services"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// CreateClient -> menambahkan client baru
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req struct {
		Name       string  `json:"name" binding:"required"`
		Phone      string  `json:"phone" binding:"required"`
		Email      *string `json:"email"`
		AltContact *string `json:"alt_contact"`
		Notes      string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	client := models.Client{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		AltContact: req.AltContact,
		Notes:      req.Notes,
	}

	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New client created: %s (%s)", client.Name, client.Phone)
	utils.RespondJSON(c, http.StatusCreated, "Client created successfully", client)
}

// GetAllClients -> menampilkan seluruh client
func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Find(&clients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of clients", clients)
}

// GetClientByID -> detail satu client beserta bookings
func (cc *ClientController) GetClientByID(c *gin.Context) {
	clientID := c.Param("client_id")
	var client models.Client
	if err := cc.DB.Preload("Bookings").First(&client, clientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}

// UpdateClient -> update sebagian field
func (cc *ClientController) UpdateClient(c *gin.Context) {
	clientID := c.Param("client_id")
	var body struct {
		Name       *string `json:"name"`
		Phone      *string `json:"phone"`
		Email      *string `json:"email"`
		AltContact *string `json:"alt_contact"`
		Notes      *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, clientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		client.Name = *body.Name
	}
	if body.Phone != nil {
		client.Phone = *body.Phone
	}
	if body.Email != nil {
		client.Email = body.Email
	}
	if body.AltContact != nil {
		client.AltContact = body.AltContact
	}
	if body.Notes != nil {
		client.Notes = *body.Notes
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client updated", client)
}

// DeleteClient -> menghapus client (booking-nya tidak ikut; deletion flow
// yang booking-centric ada di BookingController)
func (cc *ClientController) DeleteClient(c *gin.Context) {
	clientID := c.Param("client_id")
	var client models.Client

	if err := cc.DB.First(&client, clientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := cc.DB.Delete(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Client %d deleted", client.ID)
	utils.RespondJSON(c, http.StatusOK, "Client deleted", gin.H{"id": client.ID})
}

// GetClientSummary -> ringkasan keuangan satu client
func (cc *ClientController) GetClientSummary(c *gin.Context) {
	idStr := c.Param("client_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var bookings []models.Booking
	if err := cc.DB.Where("client_id = ?", id).Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var records []models.ClientPaymentRecord
	if err := cc.DB.Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	summary := services.SummarizeClient(uint(id), bookings, records)
	utils.RespondJSON(c, http.StatusOK, "Client financial summary", summary)
}
