package models

import "time"

// ConnectionState represents the lifecycle state of a connection record.
type ConnectionState string

const (
	StatePending  ConnectionState = "PENDING"
	StateAccepted ConnectionState = "ACCEPTED"
	StateRejected ConnectionState = "REJECTED"
	StateBlocked  ConnectionState = "BLOCKED"
)

// Connection represents a directed connection relationship between two users.
// Cancel and remove delete the record; they are not states.
type Connection struct {
	ID          int64           `json:"id" db:"id"`
	RequesterID int64           `json:"requester_id" db:"requester_id"`
	AddresseeID int64           `json:"addressee_id" db:"addressee_id"`
	State       ConnectionState `json:"state" db:"state"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	RespondedAt *time.Time      `json:"responded_at,omitempty" db:"responded_at"`
}

// SendConnectionRequest is the request body for creating a connection request.
type SendConnectionRequest struct {
	AddresseeID int64 `json:"addressee_id" binding:"required" example:"42"`
}
