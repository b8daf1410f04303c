package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAllChannels(t *testing.T) {
	channels := AllChannels()
	if len(channels) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(channels))
	}

	seen := map[Channel]bool{}
	for _, ch := range channels {
		if seen[ch] {
			t.Errorf("channel %s listed twice", ch)
		}
		seen[ch] = true
	}
	for _, ch := range []Channel{ChannelInApp, ChannelEmail, ChannelPush, ChannelSMS} {
		if !seen[ch] {
			t.Errorf("channel %s missing from AllChannels", ch)
		}
	}
}

func TestDefaultPreference(t *testing.T) {
	p := DefaultPreference(42, NotificationConnectionRequest)

	if p.UserID != 42 || p.Type != NotificationConnectionRequest {
		t.Errorf("defaults carry wrong identity: %+v", p)
	}
	if !p.ChannelEnabled(ChannelInApp) {
		t.Error("expected in-app enabled by default")
	}
	if !p.ChannelEnabled(ChannelEmail) {
		t.Error("expected email enabled by default")
	}
	if p.ChannelEnabled(ChannelPush) {
		t.Error("expected push disabled by default")
	}
	if p.ChannelEnabled(ChannelSMS) {
		t.Error("expected sms disabled by default")
	}
	if p.ChannelEnabled(Channel("CARRIER_PIGEON")) {
		t.Error("unknown channel must never be enabled")
	}
}

func TestNotificationJSON(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	n := Notification{
		ID:          1,
		EventID:     "evt-1",
		RecipientID: 20,
		Type:        NotificationConnectionRequest,
		Channel:     ChannelInApp,
		Title:       "New connection request",
		Message:     "You have a new connection request.",
		Status:      NotificationDelivered,
		CreatedAt:   now,
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("failed to marshal Notification: %v", err)
	}

	// Unset optional fields stay off the wire.
	if strings.Contains(string(data), "error_message") {
		t.Errorf("empty error_message serialized: %s", data)
	}
	if strings.Contains(string(data), "read_at") {
		t.Errorf("nil read_at serialized: %s", data)
	}

	var decoded Notification
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal Notification: %v", err)
	}
	if decoded.Status != NotificationDelivered {
		t.Errorf("Status: expected DELIVERED, got %s", decoded.Status)
	}
	if decoded.Channel != ChannelInApp {
		t.Errorf("Channel: expected IN_APP, got %s", decoded.Channel)
	}
}
