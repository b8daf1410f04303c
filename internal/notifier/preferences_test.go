package notifier

import (
	"errors"
	"testing"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPreferenceGet_MissingRowYieldsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, notification_type, in_app_enabled").
		WithArgs(int64(20), "CONNECTION_REQUEST").
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "notification_type", "in_app_enabled", "email_enabled", "push_enabled", "sms_enabled",
		}))

	r := NewPreferenceResolver(db)
	p, err := r.Get(20, models.NotificationConnectionRequest)
	if err != nil {
		t.Fatalf("missing row must not error, got %v", err)
	}

	if !p.InAppEnabled || !p.EmailEnabled {
		t.Errorf("defaults must enable in-app and email, got %+v", p)
	}
	if p.PushEnabled || p.SMSEnabled {
		t.Errorf("defaults must disable push and sms, got %+v", p)
	}
	if p.UserID != 20 || p.Type != models.NotificationConnectionRequest {
		t.Errorf("defaults carry wrong identity: %+v", p)
	}
}

func TestPreferenceGet_StoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, notification_type, in_app_enabled").
		WithArgs(int64(20), "CONNECTION_REQUEST").
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "notification_type", "in_app_enabled", "email_enabled", "push_enabled", "sms_enabled",
		}).AddRow(int64(20), "CONNECTION_REQUEST", false, false, true, true))

	r := NewPreferenceResolver(db)
	p, err := r.Get(20, models.NotificationConnectionRequest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.InAppEnabled || p.EmailEnabled {
		t.Errorf("stored opt-outs ignored: %+v", p)
	}
	if !p.PushEnabled || !p.SMSEnabled {
		t.Errorf("stored opt-ins ignored: %+v", p)
	}
}

// A failing preferences table must not stall the pipeline; delivery proceeds
// with the defaults.
func TestIsChannelEnabled_LookupErrorFallsBackToDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, notification_type, in_app_enabled").
		WithArgs(int64(20), "CONNECTION_REQUEST").
		WillReturnError(errors.New("relation does not exist"))

	r := NewPreferenceResolver(db)
	if !r.IsChannelEnabled(20, models.NotificationConnectionRequest, models.ChannelInApp) {
		t.Error("expected in-app enabled by default on lookup failure")
	}
}

func TestPreferenceUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO notification_preferences").
		WithArgs(int64(20), "CONNECTION_ACCEPTED", true, false, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := NewPreferenceResolver(db)
	err = r.Upsert(models.NotificationPreference{
		UserID:       20,
		Type:         models.NotificationConnectionAccepted,
		InAppEnabled: true,
		EmailEnabled: false,
		PushEnabled:  true,
		SMSEnabled:   false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}
