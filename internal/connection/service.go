package connection

import (
	"encoding/json"
	"log"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	"github.com/google/uuid"
)

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	Publish(routingKey string, body []byte, correlationID string) error
}

// Service is the single mutation entry point for connection records. Every
// successful mutation emits exactly one event, after persistence. Publish
// failures are logged and never affect the mutation's outcome.
type Service struct {
	Store     *Store
	Publisher EventPublisher
}

// NewService creates a new connection service.
func NewService(store *Store, pub EventPublisher) *Service {
	return &Service{Store: store, Publisher: pub}
}

// SendRequest creates a PENDING connection from requester to addressee.
// Fails for self-connections and when an active or blocked record already
// exists for the pair. A stale REJECTED record does not block a new request;
// it is replaced.
func (s *Service) SendRequest(requesterID, addresseeID int64, correlationID string) (*models.Connection, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfConnection
	}

	existing, err := s.Store.FindByPair(requesterID, addresseeID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if existing != nil {
		switch existing.State {
		case models.StatePending, models.StateAccepted, models.StateBlocked:
			return nil, &DuplicateRequestError{State: existing.State}
		case models.StateRejected:
			// Soft rejection: a new request replaces the rejected record so the
			// pair keeps at most one row.
			if _, err := s.Store.DeleteInState(existing.ID, models.StateRejected); err != nil {
				return nil, err
			}
		}
	}

	conn := &models.Connection{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		State:       models.StatePending,
		CreatedAt:   time.Now(),
	}
	if err := s.Store.Insert(conn); err != nil {
		return nil, err
	}

	s.emit(models.EventConnectionRequested, conn, correlationID, 0)
	return conn, nil
}

// Accept transitions a PENDING connection to ACCEPTED. Addressee only.
func (s *Service) Accept(id, actorID int64, correlationID string) (*models.Connection, error) {
	return s.apply(id, actorID, ActionAccept, correlationID)
}

// Reject transitions a PENDING connection to REJECTED. Addressee only.
func (s *Service) Reject(id, actorID int64, correlationID string) (*models.Connection, error) {
	return s.apply(id, actorID, ActionReject, correlationID)
}

// Block transitions a PENDING connection to BLOCKED. Addressee only. Future
// requests between the pair are suppressed until the block record is purged.
func (s *Service) Block(id, actorID int64, correlationID string) (*models.Connection, error) {
	return s.apply(id, actorID, ActionBlock, correlationID)
}

// Cancel deletes a PENDING connection. Requester only.
func (s *Service) Cancel(id, actorID int64, correlationID string) error {
	_, err := s.apply(id, actorID, ActionCancel, correlationID)
	return err
}

// Remove deletes an ACCEPTED connection. Either party.
func (s *Service) Remove(id, actorID int64, correlationID string) error {
	_, err := s.apply(id, actorID, ActionRemove, correlationID)
	return err
}

// apply loads the record, authorizes the actor, resolves the transition and
// persists it with a state-pinned write. The loser of a concurrent race
// observes InvalidTransitionError, never a silent no-op.
func (s *Service) apply(id, actorID int64, action Action, correlationID string) (*models.Connection, error) {
	conn, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actorID != conn.RequesterID && actorID != conn.AddresseeID {
		// Outsiders get the same answer as a missing record.
		return nil, ErrNotFound
	}

	outcome, err := Apply(conn.State, action)
	if err != nil {
		return nil, err
	}
	if !Authorized(action, conn, actorID) {
		return nil, &InvalidTransitionError{State: conn.State, Action: action}
	}

	if outcome.Delete {
		won, err := s.Store.DeleteInState(conn.ID, conn.State)
		if err != nil {
			return nil, err
		}
		if !won {
			return nil, &InvalidTransitionError{State: conn.State, Action: action}
		}
		var removedBy int64
		if outcome.Event == models.EventConnectionRemoved {
			removedBy = actorID
		}
		s.emit(outcome.Event, conn, correlationID, removedBy)
		return conn, nil
	}

	now := time.Now()
	won, err := s.Store.UpdateState(conn.ID, conn.State, outcome.Next, now)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, &InvalidTransitionError{State: conn.State, Action: action}
	}
	conn.State = outcome.Next
	conn.RespondedAt = &now

	s.emit(outcome.Event, conn, correlationID, 0)
	return conn, nil
}

// emit publishes one event describing a committed mutation. Best effort: a
// publish failure is logged and swallowed, the mutation is the source of truth.
func (s *Service) emit(eventType models.EventType, conn *models.Connection, correlationID string, removedBy int64) {
	event := models.ConnectionEvent{
		EventID:       uuid.New().String(),
		CorrelationID: correlationID,
		EventType:     eventType,
		Timestamp:     time.Now(),
		ConnectionID:  conn.ID,
		RequesterID:   conn.RequesterID,
		AddresseeID:   conn.AddresseeID,
		RemovedBy:     removedBy,
	}

	body, _ := json.Marshal(event)
	if err := s.Publisher.Publish(string(eventType), body, correlationID); err != nil {
		log.Printf("[Connections] Error publishing event: %v event_id=%s correlation_id=%s",
			err, event.EventID, correlationID)
	}
}
