package notifier

import (
	"database/sql"
	"errors"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// ErrNotificationNotFound is returned when a notification id is unknown or
// not owned by the requesting user.
var ErrNotificationNotFound = errors.New("notification not found")

// Store persists notification records and the consumer's idempotency keys.
type Store struct {
	DB *sql.DB
}

// NewStore creates a new notification store.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Create persists one notification. The UNIQUE(event_id, channel) constraint
// makes redelivered events a no-op: created=false means a record for this
// (event, channel) pair already exists.
func (s *Store) Create(n *models.Notification) (bool, error) {
	err := s.DB.QueryRow(
		`INSERT INTO notifications
		   (event_id, recipient_id, notification_type, channel, title, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (event_id, channel) DO NOTHING
		 RETURNING id`,
		n.EventID, n.RecipientID, string(n.Type), string(n.Channel),
		n.Title, n.Message, string(n.Status), n.CreatedAt,
	).Scan(&n.ID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateDelivery records the outcome of one delivery attempt.
func (s *Store) UpdateDelivery(id int64, status models.NotificationStatus, errMsg string, retryCount int) error {
	_, err := s.DB.Exec(
		`UPDATE notifications SET status = $1, error_message = $2, retry_count = $3 WHERE id = $4`,
		string(status), errMsg, retryCount, id,
	)
	return err
}

// WasEventProcessed reports whether the consumer has fully processed the event
// before. Errors are returned so the caller can decide to fall back on the
// unique constraint instead.
func (s *Store) WasEventProcessed(eventID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM idempotency_keys WHERE event_id = $1)", eventID,
	).Scan(&exists)
	return exists, err
}

// MarkEventProcessed records the idempotency key for a fully processed event.
func (s *Store) MarkEventProcessed(eventID string) error {
	_, err := s.DB.Exec(
		"INSERT INTO idempotency_keys (event_id) VALUES ($1) ON CONFLICT DO NOTHING", eventID,
	)
	return err
}

// ListByUser returns the user's in-app notifications, newest first.
func (s *Store) ListByUser(userID int64, limit, offset int) ([]models.Notification, error) {
	rows, err := s.DB.Query(
		`SELECT id, event_id, recipient_id, notification_type, channel, title, message,
		        status, retry_count, error_message, is_read, read_at, created_at
		 FROM notifications
		 WHERE recipient_id = $1 AND channel = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		userID, string(models.ChannelInApp), limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// UnreadCount returns the number of unread in-app notifications for the user.
func (s *Store) UnreadCount(userID int64) (int, error) {
	var count int
	err := s.DB.QueryRow(
		`SELECT COUNT(*) FROM notifications
		 WHERE recipient_id = $1 AND channel = $2 AND is_read = FALSE`,
		userID, string(models.ChannelInApp),
	).Scan(&count)
	return count, err
}

// MarkRead marks one in-app notification as read. Unknown or foreign ids
// report ErrNotificationNotFound.
func (s *Store) MarkRead(id, userID int64) error {
	res, err := s.DB.Exec(
		`UPDATE notifications SET is_read = TRUE, read_at = $1
		 WHERE id = $2 AND recipient_id = $3 AND channel = $4`,
		time.Now(), id, userID, string(models.ChannelInApp),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread in-app notification of the user as read and
// returns how many changed. Re-running it is a no-op.
func (s *Store) MarkAllRead(userID int64) (int64, error) {
	res, err := s.DB.Exec(
		`UPDATE notifications SET is_read = TRUE, read_at = $1
		 WHERE recipient_id = $2 AND channel = $3 AND is_read = FALSE`,
		time.Now(), userID, string(models.ChannelInApp),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes one in-app notification owned by the user.
func (s *Store) Delete(id, userID int64) error {
	res, err := s.DB.Exec(
		`DELETE FROM notifications WHERE id = $1 AND recipient_id = $2 AND channel = $3`,
		id, userID, string(models.ChannelInApp),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteByReadStatus bulk-deletes the user's in-app notifications by read
// state and returns how many were removed.
func (s *Store) DeleteByReadStatus(userID int64, read bool) (int64, error) {
	res, err := s.DB.Exec(
		`DELETE FROM notifications WHERE recipient_id = $1 AND channel = $2 AND is_read = $3`,
		userID, string(models.ChannelInApp), read,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// FindFailedForRetry returns notifications in the given status whose retry
// count has not exhausted the budget. Hook for a periodic retry sweep.
func (s *Store) FindFailedForRetry(status models.NotificationStatus, maxRetries int) ([]models.Notification, error) {
	rows, err := s.DB.Query(
		`SELECT id, event_id, recipient_id, notification_type, channel, title, message,
		        status, retry_count, error_message, is_read, read_at, created_at
		 FROM notifications
		 WHERE status = $1 AND retry_count < $2
		 ORDER BY created_at`,
		string(status), maxRetries,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// RegisterDeviceToken stores a push token for the user. Re-registering the
// same token is a no-op.
func (s *Store) RegisterDeviceToken(userID int64, token string) error {
	_, err := s.DB.Exec(
		`INSERT INTO device_tokens (user_id, token) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, token,
	)
	return err
}

// DeviceTokens returns the registered push tokens for a user.
func (s *Store) DeviceTokens(userID int64) ([]string, error) {
	rows, err := s.DB.Query(
		"SELECT token FROM device_tokens WHERE user_id = $1", userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func scanNotifications(rows *sql.Rows) ([]models.Notification, error) {
	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var ntype, channel, status string
		var errMsg sql.NullString
		if err := rows.Scan(&n.ID, &n.EventID, &n.RecipientID, &ntype, &channel, &n.Title,
			&n.Message, &status, &n.RetryCount, &errMsg, &n.IsRead, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Type = models.NotificationType(ntype)
		n.Channel = models.Channel(channel)
		n.Status = models.NotificationStatus(status)
		n.ErrorMessage = errMsg.String
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
