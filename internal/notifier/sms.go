package notifier

import (
	"context"
	"log"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// SMSStrategy is a fail-soft placeholder: no SMS provider is wired yet, so
// every delivery is recorded as FAILED without a retry. It stays registered so
// the channel registry remains complete and opted-in users see an explicit
// outcome instead of a hang.
type SMSStrategy struct {
	Store *Store
}

// Deliver marks the record FAILED with a not-implemented reason.
func (s *SMSStrategy) Deliver(ctx context.Context, n *models.Notification) {
	if err := s.Store.UpdateDelivery(n.ID, models.NotificationFailed, "sms channel not implemented", n.RetryCount); err != nil {
		log.Printf("[SMS] Error recording failure: %v notification_id=%d", err, n.ID)
		return
	}
	n.Status = models.NotificationFailed
	n.ErrorMessage = "sms channel not implemented"
}

// Channel reports SMS.
func (s *SMSStrategy) Channel() models.Channel { return models.ChannelSMS }

// Priority reports 4, the least urgent channel.
func (s *SMSStrategy) Priority() int { return 4 }
