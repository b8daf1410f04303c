package postgres

import (
	"database/sql"
	"log"
)

// RunMigrations executes database migrations for the named service.
func RunMigrations(db *sql.DB, service string) error {
	migrations := getServiceMigrations(service)
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	log.Printf("Migrations completed for service: %s", service)
	return nil
}

func getServiceMigrations(service string) []string {
	switch service {
	case "api":
		return []string{
			`CREATE TABLE IF NOT EXISTS connections (
				id BIGSERIAL PRIMARY KEY,
				requester_id BIGINT NOT NULL,
				addressee_id BIGINT NOT NULL,
				state VARCHAR(20) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				responded_at TIMESTAMP,
				CHECK (requester_id <> addressee_id)
			)`,
			// At most one live record per unordered pair of users.
			`CREATE UNIQUE INDEX IF NOT EXISTS connections_pair_idx
				ON connections (LEAST(requester_id, addressee_id), GREATEST(requester_id, addressee_id))`,
		}
	case "notifier":
		return []string{
			`CREATE TABLE IF NOT EXISTS idempotency_keys (
				event_id VARCHAR(36) PRIMARY KEY,
				processed_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS notifications (
				id BIGSERIAL PRIMARY KEY,
				event_id VARCHAR(36) NOT NULL,
				recipient_id BIGINT NOT NULL,
				notification_type VARCHAR(50) NOT NULL,
				channel VARCHAR(20) NOT NULL,
				title VARCHAR(255) NOT NULL,
				message TEXT NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
				retry_count INTEGER NOT NULL DEFAULT 0,
				error_message TEXT,
				is_read BOOLEAN NOT NULL DEFAULT FALSE,
				read_at TIMESTAMP,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				UNIQUE (event_id, channel)
			)`,
			`CREATE INDEX IF NOT EXISTS notifications_recipient_idx
				ON notifications (recipient_id, channel, is_read)`,
			`CREATE TABLE IF NOT EXISTS notification_preferences (
				user_id BIGINT NOT NULL,
				notification_type VARCHAR(50) NOT NULL,
				in_app_enabled BOOLEAN NOT NULL DEFAULT TRUE,
				email_enabled BOOLEAN NOT NULL DEFAULT TRUE,
				push_enabled BOOLEAN NOT NULL DEFAULT FALSE,
				sms_enabled BOOLEAN NOT NULL DEFAULT FALSE,
				PRIMARY KEY (user_id, notification_type)
			)`,
			`CREATE TABLE IF NOT EXISTS device_tokens (
				user_id BIGINT NOT NULL,
				token VARCHAR(255) NOT NULL,
				registered_at TIMESTAMP NOT NULL DEFAULT NOW(),
				PRIMARY KEY (user_id, token)
			)`,
		}
	default:
		return nil
	}
}
