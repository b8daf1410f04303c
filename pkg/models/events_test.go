package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEventTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		et       EventType
		expected string
	}{
		{"requested", EventConnectionRequested, "connection.requested"},
		{"accepted", EventConnectionAccepted, "connection.accepted"},
		{"rejected", EventConnectionRejected, "connection.rejected"},
		{"blocked", EventConnectionBlocked, "connection.blocked"},
		{"cancelled", EventConnectionCancelled, "connection.cancelled"},
		{"removed", EventConnectionRemoved, "connection.removed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.et) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, string(tt.et))
			}
		})
	}
}

func TestAllEventTypes(t *testing.T) {
	types := AllEventTypes()
	if len(types) != 6 {
		t.Fatalf("expected 6 event types, got %d", len(types))
	}
	for _, et := range types {
		if !strings.HasPrefix(et, "connection.") {
			t.Errorf("event type %q lacks the connection. routing prefix", et)
		}
	}
}

func TestConnectionEventJSON(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	event := ConnectionEvent{
		EventID:       "evt-123",
		CorrelationID: "corr-456",
		EventType:     EventConnectionRequested,
		Timestamp:     now,
		ConnectionID:  7,
		RequesterID:   10,
		AddresseeID:   20,
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal ConnectionEvent: %v", err)
	}

	var decoded ConnectionEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal ConnectionEvent: %v", err)
	}

	if decoded.EventID != event.EventID {
		t.Errorf("EventID: expected %q, got %q", event.EventID, decoded.EventID)
	}
	if decoded.CorrelationID != event.CorrelationID {
		t.Errorf("CorrelationID: expected %q, got %q", event.CorrelationID, decoded.CorrelationID)
	}
	if decoded.EventType != event.EventType {
		t.Errorf("EventType: expected %q, got %q", event.EventType, decoded.EventType)
	}
	if decoded.ConnectionID != event.ConnectionID {
		t.Errorf("ConnectionID: expected %d, got %d", event.ConnectionID, decoded.ConnectionID)
	}
	if decoded.RequesterID != 10 || decoded.AddresseeID != 20 {
		t.Errorf("pair: expected (10, 20), got (%d, %d)", decoded.RequesterID, decoded.AddresseeID)
	}
}

// removed_by only appears on the wire for removal events.
func TestConnectionEventJSON_RemovedByOmitted(t *testing.T) {
	event := ConnectionEvent{
		EventID:      "evt-123",
		EventType:    EventConnectionRequested,
		ConnectionID: 7,
		RequesterID:  10,
		AddresseeID:  20,
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal ConnectionEvent: %v", err)
	}
	if strings.Contains(string(data), "removed_by") {
		t.Errorf("removed_by present in non-removal event: %s", data)
	}

	event.EventType = EventConnectionRemoved
	event.RemovedBy = 10
	data, err = json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal ConnectionEvent: %v", err)
	}
	if !strings.Contains(string(data), `"removed_by":10`) {
		t.Errorf("removed_by missing from removal event: %s", data)
	}
}
