package api

import (
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates and configures the Gin router.
func NewRouter(conns *ConnectionHandler, notifs *NotificationHandler, prefs *PreferenceHandler) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(middleware.CorrelationID())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Connection lifecycle
	r.POST("/connections", conns.SendRequest)
	r.GET("/connections", conns.List)
	r.POST("/connections/:id/accept", conns.Accept)
	r.POST("/connections/:id/reject", conns.Reject)
	r.POST("/connections/:id/block", conns.Block)
	r.POST("/connections/:id/cancel", conns.Cancel)
	r.DELETE("/connections/:id", conns.Remove)

	// Notification query surface
	r.GET("/notifications", notifs.List)
	r.GET("/notifications/unread-count", notifs.UnreadCount)
	r.PUT("/notifications/read-all", notifs.MarkAllRead)
	r.PUT("/notifications/:id/read", notifs.MarkRead)
	r.DELETE("/notifications/:id", notifs.Delete)
	r.DELETE("/notifications", notifs.DeleteByReadStatus)
	r.POST("/devices", notifs.RegisterDevice)

	// Preferences
	r.GET("/preferences/:type", prefs.Get)
	r.PUT("/preferences/:type", prefs.Update)

	return r
}
