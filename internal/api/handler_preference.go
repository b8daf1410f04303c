package api

import (
	"log"
	"net/http"

	"github.com/DeepakUp9/linkedin-system-sub001/internal/notifier"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler serves per-(user, notification type) channel preferences.
type PreferenceHandler struct {
	Resolver *notifier.PreferenceResolver
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(resolver *notifier.PreferenceResolver) *PreferenceHandler {
	return &PreferenceHandler{Resolver: resolver}
}

func notificationType(c *gin.Context) (models.NotificationType, bool) {
	t := models.NotificationType(c.Param("type"))
	switch t {
	case models.NotificationConnectionRequest,
		models.NotificationConnectionAccepted,
		models.NotificationConnectionRejected:
		return t, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "unknown notification type"})
	return "", false
}

// Get godoc
// @Summary      Get channel preferences for a notification type
// @Description  Returns the stored preference, or the system defaults when none exists
// @Tags         preferences
// @Produce      json
// @Param        X-User-ID  header    int     true  "Acting user id"
// @Param        type       path      string  true  "Notification type"
// @Success      200        {object}  models.NotificationPreference
// @Failure      400        {object}  map[string]string
// @Router       /preferences/{type} [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	t, ok := notificationType(c)
	if !ok {
		return
	}

	pref, err := h.Resolver.Get(userID, t)
	if err != nil {
		log.Printf("[API] Error fetching preference: %v user_id=%d type=%s", err, userID, t)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch preference"})
		return
	}
	c.JSON(http.StatusOK, pref)
}

// Update godoc
// @Summary      Set channel preferences for a notification type
// @Description  Idempotent upsert; omitted channels keep their current (or default) value
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    int                             true  "Acting user id"
// @Param        type       path      string                          true  "Notification type"
// @Param        request    body      models.UpdatePreferenceRequest  true  "Channel flags"
// @Success      200        {object}  models.NotificationPreference
// @Failure      400        {object}  map[string]string
// @Router       /preferences/{type} [put]
func (h *PreferenceHandler) Update(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	t, ok := notificationType(c)
	if !ok {
		return
	}

	var req models.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Start from the effective preference so partial updates keep the rest.
	pref, err := h.Resolver.Get(userID, t)
	if err != nil {
		log.Printf("[API] Error fetching preference: %v user_id=%d type=%s", err, userID, t)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch preference"})
		return
	}
	if req.InAppEnabled != nil {
		pref.InAppEnabled = *req.InAppEnabled
	}
	if req.EmailEnabled != nil {
		pref.EmailEnabled = *req.EmailEnabled
	}
	if req.PushEnabled != nil {
		pref.PushEnabled = *req.PushEnabled
	}
	if req.SMSEnabled != nil {
		pref.SMSEnabled = *req.SMSEnabled
	}

	if err := h.Resolver.Upsert(pref); err != nil {
		log.Printf("[API] Error saving preference: %v user_id=%d type=%s", err, userID, t)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preference"})
		return
	}
	c.JSON(http.StatusOK, pref)
}
