package notifier

import (
	"database/sql"
	"log"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// PreferenceResolver looks up per-(user, notification type) channel opt-ins.
// A missing row is a valid state and resolves to the system defaults.
type PreferenceResolver struct {
	DB *sql.DB
}

// NewPreferenceResolver creates a new resolver.
func NewPreferenceResolver(db *sql.DB) *PreferenceResolver {
	return &PreferenceResolver{DB: db}
}

// Get returns the stored preference for (userID, t), or the defaults when no
// row exists.
func (r *PreferenceResolver) Get(userID int64, t models.NotificationType) (models.NotificationPreference, error) {
	var p models.NotificationPreference
	var ntype string
	err := r.DB.QueryRow(
		`SELECT user_id, notification_type, in_app_enabled, email_enabled, push_enabled, sms_enabled
		 FROM notification_preferences
		 WHERE user_id = $1 AND notification_type = $2`,
		userID, string(t),
	).Scan(&p.UserID, &ntype, &p.InAppEnabled, &p.EmailEnabled, &p.PushEnabled, &p.SMSEnabled)
	if err == sql.ErrNoRows {
		return models.DefaultPreference(userID, t), nil
	}
	if err != nil {
		return models.NotificationPreference{}, err
	}
	p.Type = models.NotificationType(ntype)
	return p, nil
}

// IsChannelEnabled reports whether the channel is opted in for the user and
// type. Lookup errors fall back to the defaults so a flaky preferences table
// never stalls the pipeline.
func (r *PreferenceResolver) IsChannelEnabled(userID int64, t models.NotificationType, ch models.Channel) bool {
	p, err := r.Get(userID, t)
	if err != nil {
		log.Printf("[Notifier] Error resolving preference, using defaults: %v user_id=%d type=%s", err, userID, t)
		p = models.DefaultPreference(userID, t)
	}
	return p.ChannelEnabled(ch)
}

// Upsert stores the preference. Re-sending the same preference is a no-op.
func (r *PreferenceResolver) Upsert(p models.NotificationPreference) error {
	_, err := r.DB.Exec(
		`INSERT INTO notification_preferences
		   (user_id, notification_type, in_app_enabled, email_enabled, push_enabled, sms_enabled)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, notification_type)
		 DO UPDATE SET in_app_enabled = $3, email_enabled = $4, push_enabled = $5, sms_enabled = $6`,
		p.UserID, string(p.Type), p.InAppEnabled, p.EmailEnabled, p.PushEnabled, p.SMSEnabled,
	)
	return err
}
