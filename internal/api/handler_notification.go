package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/DeepakUp9/linkedin-system-sub001/internal/notifier"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NotificationHandler serves the in-app notification query surface.
type NotificationHandler struct {
	Store *notifier.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store *notifier.Store) *NotificationHandler {
	return &NotificationHandler{Store: store}
}

// List godoc
// @Summary      List the acting user's in-app notifications
// @Tags         notifications
// @Produce      json
// @Param        X-User-ID  header    int  true   "Acting user id"
// @Param        page       query     int  false  "Page number (1-based)"
// @Param        page_size  query     int  false  "Page size (max 100)"
// @Success      200        {array}   models.Notification
// @Failure      500        {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	notifications, err := h.Store.ListByUser(userID, size, (page-1)*size)
	if err != nil {
		log.Printf("[API] Error listing notifications: %v user_id=%d", err, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCount godoc
// @Summary      Count unread in-app notifications
// @Tags         notifications
// @Produce      json
// @Param        X-User-ID  header    int  true  "Acting user id"
// @Success      200        {object}  map[string]int
// @Failure      500        {object}  map[string]string
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	count, err := h.Store.UnreadCount(userID)
	if err != nil {
		log.Printf("[API] Error counting unread notifications: %v user_id=%d", err, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// MarkRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Param        X-User-ID  header  int  true  "Acting user id"
// @Param        id         path    int  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	if err := h.Store.MarkRead(id, userID); err != nil {
		if errors.Is(err, notifier.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		log.Printf("[API] Error marking notification read: %v notification_id=%d", err, id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Mark all of the acting user's notifications as read
// @Tags         notifications
// @Produce      json
// @Param        X-User-ID  header    int  true  "Acting user id"
// @Success      200        {object}  map[string]int64
// @Failure      500        {object}  map[string]string
// @Router       /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	updated, err := h.Store.MarkAllRead(userID)
	if err != nil {
		log.Printf("[API] Error marking all notifications read: %v user_id=%d", err, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Delete godoc
// @Summary      Delete one notification
// @Tags         notifications
// @Produce      json
// @Param        X-User-ID  header  int  true  "Acting user id"
// @Param        id         path    int  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	if err := h.Store.Delete(id, userID); err != nil {
		if errors.Is(err, notifier.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		log.Printf("[API] Error deleting notification: %v notification_id=%d", err, id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteByReadStatus godoc
// @Summary      Bulk-delete notifications by read status
// @Tags         notifications
// @Produce      json
// @Param        X-User-ID  header    int     true  "Acting user id"
// @Param        read       query     bool    true  "Delete read (true) or unread (false) notifications"
// @Success      200        {object}  map[string]int64
// @Failure      400        {object}  map[string]string
// @Router       /notifications [delete]
func (h *NotificationHandler) DeleteByReadStatus(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	read, err := strconv.ParseBool(c.Query("read"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read query parameter must be true or false"})
		return
	}

	deleted, err := h.Store.DeleteByReadStatus(userID, read)
	if err != nil {
		log.Printf("[API] Error bulk-deleting notifications: %v user_id=%d", err, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// RegisterDevice godoc
// @Summary      Register a push device token for the acting user
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  int                true  "Acting user id"
// @Param        request    body    deviceTokenRequest true  "Device token"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /devices [post]
func (h *NotificationHandler) RegisterDevice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	var req deviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.RegisterDeviceToken(userID, req.Token); err != nil {
		log.Printf("[API] Error registering device token: %v user_id=%d", err, userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register device"})
		return
	}
	c.Status(http.StatusNoContent)
}

type deviceTokenRequest struct {
	Token string `json:"token" binding:"required" example:"fcm-token-abc123"`
}
