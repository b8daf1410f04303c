package connection

import (
	"errors"
	"fmt"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// ErrNotFound is returned when no connection exists for the given id, or the
// acting user is not a party to it. The two cases are deliberately
// indistinguishable so callers cannot probe for existence.
var ErrNotFound = errors.New("connection not found")

// ErrSelfConnection is returned when a user sends a request to themselves.
var ErrSelfConnection = errors.New("cannot create a connection with yourself")

// InvalidTransitionError reports an action that is not legal for the record's
// current state, or was attempted by an unauthorized actor.
type InvalidTransitionError struct {
	State  models.ConnectionState
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a connection in state %s", e.Action, e.State)
}

// DuplicateRequestError reports that an active or blocked connection already
// exists for the pair of users.
type DuplicateRequestError struct {
	State models.ConnectionState
}

func (e *DuplicateRequestError) Error() string {
	if e.State == models.StateBlocked {
		return "connection request is not allowed between these users"
	}
	return fmt.Sprintf("a connection in state %s already exists between these users", e.State)
}
