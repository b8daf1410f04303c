package models

import "time"

// EventType represents the type of connection domain event. Event types double
// as routing keys on the events exchange, one topic per type.
type EventType string

const (
	EventConnectionRequested EventType = "connection.requested"
	EventConnectionAccepted  EventType = "connection.accepted"
	EventConnectionRejected  EventType = "connection.rejected"
	EventConnectionBlocked   EventType = "connection.blocked"
	EventConnectionCancelled EventType = "connection.cancelled"
	EventConnectionRemoved   EventType = "connection.removed"
)

// ConnectionEvent is the immutable fact describing one committed connection
// state transition. EventID is the consumer-side idempotency key.
type ConnectionEvent struct {
	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id"`
	EventType     EventType `json:"event_type"`
	Timestamp     time.Time `json:"timestamp"`
	ConnectionID  int64     `json:"connection_id"`
	RequesterID   int64     `json:"requester_id"`
	AddresseeID   int64     `json:"addressee_id"`

	// RemovedBy is set only on connection.removed events.
	RemovedBy int64 `json:"removed_by,omitempty"`
}

// AllEventTypes lists every routing key notification consumers bind to.
func AllEventTypes() []string {
	return []string{
		string(EventConnectionRequested),
		string(EventConnectionAccepted),
		string(EventConnectionRejected),
		string(EventConnectionBlocked),
		string(EventConnectionCancelled),
		string(EventConnectionRemoved),
	}
}
