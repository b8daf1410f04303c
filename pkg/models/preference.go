package models

// NotificationPreference holds per-channel opt-in flags for one
// (user, notification type) pair.
type NotificationPreference struct {
	UserID       int64            `json:"user_id" db:"user_id"`
	Type         NotificationType `json:"notification_type" db:"notification_type"`
	InAppEnabled bool             `json:"in_app_enabled" db:"in_app_enabled"`
	EmailEnabled bool             `json:"email_enabled" db:"email_enabled"`
	PushEnabled  bool             `json:"push_enabled" db:"push_enabled"`
	SMSEnabled   bool             `json:"sms_enabled" db:"sms_enabled"`
}

// DefaultPreference returns the system default when a user has stored no
// preference for the given type: in-app and email on, push and SMS off.
func DefaultPreference(userID int64, t NotificationType) NotificationPreference {
	return NotificationPreference{
		UserID:       userID,
		Type:         t,
		InAppEnabled: true,
		EmailEnabled: true,
		PushEnabled:  false,
		SMSEnabled:   false,
	}
}

// ChannelEnabled reports whether the given channel is opted in.
func (p NotificationPreference) ChannelEnabled(ch Channel) bool {
	switch ch {
	case ChannelInApp:
		return p.InAppEnabled
	case ChannelEmail:
		return p.EmailEnabled
	case ChannelPush:
		return p.PushEnabled
	case ChannelSMS:
		return p.SMSEnabled
	default:
		return false
	}
}

// UpdatePreferenceRequest is the request body for setting channel preferences.
type UpdatePreferenceRequest struct {
	InAppEnabled *bool `json:"in_app_enabled" example:"true"`
	EmailEnabled *bool `json:"email_enabled" example:"true"`
	PushEnabled  *bool `json:"push_enabled" example:"false"`
	SMSEnabled   *bool `json:"sms_enabled" example:"false"`
}
