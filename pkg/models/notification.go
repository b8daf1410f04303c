package models

import "time"

// Channel is a notification delivery medium.
type Channel string

const (
	ChannelInApp Channel = "IN_APP"
	ChannelEmail Channel = "EMAIL"
	ChannelPush  Channel = "PUSH"
	ChannelSMS   Channel = "SMS"
)

// AllChannels lists every delivery channel. The strategy registry must cover
// each of these exactly once.
func AllChannels() []Channel {
	return []Channel{ChannelInApp, ChannelEmail, ChannelPush, ChannelSMS}
}

// NotificationStatus is the delivery state of one notification record.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "PENDING"
	NotificationSent      NotificationStatus = "SENT"
	NotificationDelivered NotificationStatus = "DELIVERED"
	NotificationFailed    NotificationStatus = "FAILED"
)

// NotificationType categorizes notifications for preference lookups.
type NotificationType string

const (
	NotificationConnectionRequest  NotificationType = "CONNECTION_REQUEST"
	NotificationConnectionAccepted NotificationType = "CONNECTION_ACCEPTED"
	NotificationConnectionRejected NotificationType = "CONNECTION_REJECTED"
)

// Notification is one (recipient, channel) delivery attempt created per
// consumed event. Only its assigned delivery strategy mutates it after
// creation.
type Notification struct {
	ID           int64              `json:"id" db:"id"`
	EventID      string             `json:"event_id" db:"event_id"`
	RecipientID  int64              `json:"recipient_id" db:"recipient_id"`
	Type         NotificationType   `json:"type" db:"notification_type"`
	Channel      Channel            `json:"channel" db:"channel"`
	Title        string             `json:"title" db:"title"`
	Message      string             `json:"message" db:"message"`
	Status       NotificationStatus `json:"status" db:"status"`
	RetryCount   int                `json:"retry_count" db:"retry_count"`
	ErrorMessage string             `json:"error_message,omitempty" db:"error_message"`
	IsRead       bool               `json:"is_read" db:"is_read"`
	ReadAt       *time.Time         `json:"read_at,omitempty" db:"read_at"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
}
