package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer turns connection events into notification records and hands them to
// the delivery dispatcher. HandleMessage always returns nil: a bad or
// half-processed event is logged and acknowledged rather than redelivered
// forever, and the UNIQUE(event_id, channel) constraint keeps redeliveries
// from duplicating records.
type Consumer struct {
	Store      *Store
	Prefs      *PreferenceResolver
	Dispatcher *Dispatcher
	Users      UserLookup

	// LookupTimeout bounds the enrichment call to the user directory.
	LookupTimeout time.Duration
}

// NewConsumer creates a new notification consumer.
func NewConsumer(store *Store, prefs *PreferenceResolver, dispatcher *Dispatcher, users UserLookup) *Consumer {
	return &Consumer{
		Store:         store,
		Prefs:         prefs,
		Dispatcher:    dispatcher,
		Users:         users,
		LookupTimeout: 3 * time.Second,
	}
}

// HandleMessage processes one connection event.
func (c *Consumer) HandleMessage(delivery amqp.Delivery) error {
	var event models.ConnectionEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		// Malformed forever; drop it rather than block the consumer group.
		log.Printf("[Notifier] Dropping malformed event: %v correlation_id=%s", err, delivery.CorrelationId)
		return nil
	}

	log.Printf("[Notifier] Processing event: type=%s event_id=%s correlation_id=%s connection_id=%d",
		event.EventType, event.EventID, event.CorrelationID, event.ConnectionID)

	recipientID, notificationType, notify := recipientFor(event)
	if !notify {
		// Blocked, cancelled and removed parties are never told.
		log.Printf("[Notifier] No notification for event type=%s event_id=%s", event.EventType, event.EventID)
		return nil
	}

	processed, err := c.Store.WasEventProcessed(event.EventID)
	if err != nil {
		// Fall through: the unique constraint on create still dedupes.
		log.Printf("[Notifier] Error checking idempotency: %v event_id=%s", err, event.EventID)
	}
	if processed {
		log.Printf("[Notifier] Duplicate event ignored: event_id=%s correlation_id=%s", event.EventID, event.CorrelationID)
		return nil
	}

	title, message := c.composeMessage(event, notificationType)

	for _, ch := range models.AllChannels() {
		if !c.Prefs.IsChannelEnabled(recipientID, notificationType, ch) {
			continue
		}
		n := &models.Notification{
			EventID:     event.EventID,
			RecipientID: recipientID,
			Type:        notificationType,
			Channel:     ch,
			Title:       title,
			Message:     message,
			Status:      models.NotificationPending,
			CreatedAt:   time.Now(),
		}
		created, err := c.Store.Create(n)
		if err != nil {
			log.Printf("[Notifier] Error creating notification: %v event_id=%s channel=%s", err, event.EventID, ch)
			continue
		}
		if !created {
			log.Printf("[Notifier] Notification already exists: event_id=%s channel=%s", event.EventID, ch)
			continue
		}
		c.Dispatcher.Dispatch(n)
	}

	if err := c.Store.MarkEventProcessed(event.EventID); err != nil {
		log.Printf("[Notifier] Error recording idempotency key: %v event_id=%s", err, event.EventID)
	}

	log.Printf("[Notifier] Event processed: event_id=%s recipient_id=%d correlation_id=%s",
		event.EventID, recipientID, event.CorrelationID)
	return nil
}

// recipientFor resolves who gets notified for an event type. The third return
// is false when the event produces no notification at all.
func recipientFor(event models.ConnectionEvent) (int64, models.NotificationType, bool) {
	switch event.EventType {
	case models.EventConnectionRequested:
		return event.AddresseeID, models.NotificationConnectionRequest, true
	case models.EventConnectionAccepted:
		return event.RequesterID, models.NotificationConnectionAccepted, true
	case models.EventConnectionRejected:
		return event.RequesterID, models.NotificationConnectionRejected, true
	default:
		return 0, "", false
	}
}

// composeMessage renders the notification text, enriching with the
// counterparty's display name where the privacy rules allow it. Enrichment is
// best effort: on lookup failure the generic template is used instead.
func (c *Consumer) composeMessage(event models.ConnectionEvent, t models.NotificationType) (string, string) {
	switch t {
	case models.NotificationConnectionRequest:
		title := "New connection request"
		if name := c.displayName(event.RequesterID); name != "" {
			return title, fmt.Sprintf("%s wants to connect with you.", name)
		}
		return title, "You have a new connection request."
	case models.NotificationConnectionAccepted:
		title := "Connection request accepted"
		if name := c.displayName(event.AddresseeID); name != "" {
			return title, fmt.Sprintf("%s accepted your connection request.", name)
		}
		return title, "Your connection request was accepted."
	case models.NotificationConnectionRejected:
		// Never reveal who declined.
		return "Connection request update", "One of your connection requests was declined."
	default:
		return "Notification", "You have a new notification."
	}
}

func (c *Consumer) displayName(userID int64) string {
	ctx, cancel := context.WithTimeout(context.Background(), c.LookupTimeout)
	defer cancel()

	user, err := c.Users.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("[Notifier] Enrichment lookup failed, using generic message: %v user_id=%d", err, userID)
		return ""
	}
	return user.DisplayName
}
