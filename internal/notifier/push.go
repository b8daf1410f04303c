package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// PushStrategy delivers notifications through an HTTP push gateway. A user
// without registered device tokens fails immediately and is not retried;
// gateway errors and timeouts increment the retry count.
type PushStrategy struct {
	Store      *Store
	GatewayURL string
	HTTP       *http.Client
}

type pushPayload struct {
	Tokens  []string `json:"tokens"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
}

// Deliver looks up the recipient's device tokens and posts to the gateway.
func (s *PushStrategy) Deliver(ctx context.Context, n *models.Notification) {
	tokens, err := s.Store.DeviceTokens(n.RecipientID)
	if err != nil {
		log.Printf("[Push] Error loading device tokens: %v notification_id=%d", err, n.ID)
		s.fail(n, err.Error(), n.RetryCount+1)
		return
	}
	if len(tokens) == 0 {
		s.fail(n, "no device tokens", n.RetryCount)
		return
	}

	body, _ := json.Marshal(pushPayload{Tokens: tokens, Title: n.Title, Message: n.Message})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.GatewayURL, bytes.NewReader(body))
	if err != nil {
		s.fail(n, err.Error(), n.RetryCount+1)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		log.Printf("[Push] Gateway call failed: %v notification_id=%d", err, n.ID)
		s.fail(n, err.Error(), n.RetryCount+1)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		s.fail(n, fmt.Sprintf("push gateway returned status %d", resp.StatusCode), n.RetryCount+1)
		return
	}

	if err := s.Store.UpdateDelivery(n.ID, models.NotificationSent, "", n.RetryCount); err != nil {
		log.Printf("[Push] Error recording sent status: %v notification_id=%d", err, n.ID)
		return
	}
	n.Status = models.NotificationSent
}

func (s *PushStrategy) fail(n *models.Notification, reason string, retryCount int) {
	if err := s.Store.UpdateDelivery(n.ID, models.NotificationFailed, reason, retryCount); err != nil {
		log.Printf("[Push] Error recording failure: %v notification_id=%d", err, n.ID)
		return
	}
	n.Status = models.NotificationFailed
	n.ErrorMessage = reason
	n.RetryCount = retryCount
}

// Channel reports PUSH.
func (s *PushStrategy) Channel() models.Channel { return models.ChannelPush }

// Priority reports 2.
func (s *PushStrategy) Priority() int { return 2 }
