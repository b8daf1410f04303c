package connection

import "github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

// Action is a user-initiated connection operation.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
	ActionBlock  Action = "block"
	ActionCancel Action = "cancel"
	ActionRemove Action = "remove"
)

// Outcome describes the effect of applying a legal action: either a state
// transition or a deletion, plus the event type emitted after persistence.
type Outcome struct {
	Next   models.ConnectionState
	Delete bool
	Event  models.EventType
}

// Apply resolves an action against the current state. The switch is exhaustive
// over states; any (state, action) pair not listed is an invalid transition.
func Apply(s models.ConnectionState, a Action) (Outcome, error) {
	switch s {
	case models.StatePending:
		switch a {
		case ActionAccept:
			return Outcome{Next: models.StateAccepted, Event: models.EventConnectionAccepted}, nil
		case ActionReject:
			return Outcome{Next: models.StateRejected, Event: models.EventConnectionRejected}, nil
		case ActionBlock:
			return Outcome{Next: models.StateBlocked, Event: models.EventConnectionBlocked}, nil
		case ActionCancel:
			return Outcome{Delete: true, Event: models.EventConnectionCancelled}, nil
		}
	case models.StateAccepted:
		if a == ActionRemove {
			return Outcome{Delete: true, Event: models.EventConnectionRemoved}, nil
		}
	case models.StateRejected, models.StateBlocked:
		// Terminal. No actions permitted.
	}
	return Outcome{}, &InvalidTransitionError{State: s, Action: a}
}

// Can reports whether action a is legal in state s. It must agree with Apply
// for every (state, action) pair.
func Can(s models.ConnectionState, a Action) bool {
	_, err := Apply(s, a)
	return err == nil
}

// Authorized reports whether the acting user may perform the action on the
// record. Accept, reject and block belong to the addressee; cancel belongs to
// the requester; remove belongs to either party.
func Authorized(a Action, c *models.Connection, actorID int64) bool {
	switch a {
	case ActionAccept, ActionReject, ActionBlock:
		return actorID == c.AddresseeID
	case ActionCancel:
		return actorID == c.RequesterID
	case ActionRemove:
		return actorID == c.RequesterID || actorID == c.AddresseeID
	default:
		return false
	}
}
