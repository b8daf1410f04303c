package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	"github.com/redis/go-redis/v9"
)

// InAppStrategy delivers in-app notifications. The record itself is the
// delivery: marking it DELIVERED makes it visible to the presentation layer.
// A failure here is a storage fault, not a business failure. When a Redis
// client is configured the payload is additionally published to the user's
// realtime channel for connected clients.
type InAppStrategy struct {
	Store *Store
	Redis *redis.Client
}

// Deliver marks the record DELIVERED and pushes it to the realtime channel.
func (s *InAppStrategy) Deliver(ctx context.Context, n *models.Notification) {
	if err := s.Store.UpdateDelivery(n.ID, models.NotificationDelivered, "", n.RetryCount); err != nil {
		log.Printf("[InApp] Error marking notification delivered: %v notification_id=%d", err, n.ID)
		if err := s.Store.UpdateDelivery(n.ID, models.NotificationFailed, err.Error(), n.RetryCount+1); err != nil {
			log.Printf("[InApp] Error recording failure: %v notification_id=%d", err, n.ID)
		}
		return
	}
	n.Status = models.NotificationDelivered

	if s.Redis == nil {
		return
	}
	payload, _ := json.Marshal(n)
	channel := fmt.Sprintf("notifications:user:%d", n.RecipientID)
	if err := s.Redis.Publish(ctx, channel, payload).Err(); err != nil {
		// Realtime push is best effort; the persisted record is the truth.
		log.Printf("[InApp] Error publishing realtime payload: %v notification_id=%d", err, n.ID)
	}
}

// Channel reports IN_APP.
func (s *InAppStrategy) Channel() models.Channel { return models.ChannelInApp }

// Priority reports 1, the most urgent and reliable channel.
func (s *InAppStrategy) Priority() int { return 1 }
