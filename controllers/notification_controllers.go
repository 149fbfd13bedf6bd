package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/studio-app/models"
	"github.com/yeremiapane/studio-app/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetNotifications -> daftar notifikasi, filter kind / unread
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	query := nc.DB.Order("created_at DESC")
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var unread int64
	nc.DB.Model(&models.Notification{}).Where("is_read = ?", false).Count(&unread)

	utils.RespondJSON(c, http.StatusOK, "List of notifications", gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead -> menandai satu notifikasi sudah dibaca
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	notifID := c.Param("notification_id")
	var notif models.Notification
	if err := nc.DB.First(&notif, notifID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	notif.IsRead = true
	if err := nc.DB.Save(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notif)
}

// MarkAllRead -> menandai semua notifikasi sudah dibaca
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	if err := nc.DB.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All notifications marked as read", nil)
}

// DeleteNotification -> menghapus satu notifikasi
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	notifID := c.Param("notification_id")
	var notif models.Notification
	if err := nc.DB.First(&notif, notifID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := nc.DB.Delete(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"id": notif.ID})
}
