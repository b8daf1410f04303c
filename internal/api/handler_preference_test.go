package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func emptyPreferenceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "notification_type", "in_app_enabled", "email_enabled", "push_enabled", "sms_enabled",
	})
}

func TestGetPreference_Defaults(t *testing.T) {
	a := newTestAPI(t)
	defer a.cleanup()

	a.notifMock.ExpectQuery("SELECT user_id, notification_type, in_app_enabled").
		WithArgs(int64(20), "CONNECTION_REQUEST").
		WillReturnRows(emptyPreferenceRows())

	w := a.do(http.MethodGet, "/preferences/CONNECTION_REQUEST", "20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var pref models.NotificationPreference
	if err := json.Unmarshal(w.Body.Bytes(), &pref); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !pref.InAppEnabled || !pref.EmailEnabled || pref.PushEnabled || pref.SMSEnabled {
		t.Errorf("expected system defaults, got %+v", pref)
	}
}

func TestGetPreference_UnknownType(t *testing.T) {
	a := newTestAPI(t)
	defer a.cleanup()

	w := a.do(http.MethodGet, "/preferences/MARKETING_SPAM", "20", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

// A partial update keeps the untouched channels at their effective values.
func TestUpdatePreference_PartialMerge(t *testing.T) {
	a := newTestAPI(t)
	defer a.cleanup()

	// Effective preference is the default (in-app and email on).
	a.notifMock.ExpectQuery("SELECT user_id, notification_type, in_app_enabled").
		WithArgs(int64(20), "CONNECTION_REQUEST").
		WillReturnRows(emptyPreferenceRows())

	// Only push toggled on; everything else keeps the defaults.
	a.notifMock.ExpectExec("INSERT INTO notification_preferences").
		WithArgs(int64(20), "CONNECTION_REQUEST", true, true, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := a.do(http.MethodPut, "/preferences/CONNECTION_REQUEST", "20", `{"push_enabled":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var pref models.NotificationPreference
	if err := json.Unmarshal(w.Body.Bytes(), &pref); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !pref.PushEnabled {
		t.Error("expected push enabled after update")
	}
	if !pref.InAppEnabled || !pref.EmailEnabled {
		t.Error("expected untouched channels to keep their defaults")
	}

	if err := a.notifMock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestUpdatePreference_OptOutAll(t *testing.T) {
	a := newTestAPI(t)
	defer a.cleanup()

	a.notifMock.ExpectQuery("SELECT user_id, notification_type, in_app_enabled").
		WithArgs(int64(20), "CONNECTION_ACCEPTED").
		WillReturnRows(emptyPreferenceRows())
	a.notifMock.ExpectExec("INSERT INTO notification_preferences").
		WithArgs(int64(20), "CONNECTION_ACCEPTED", false, false, false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"in_app_enabled":false,"email_enabled":false,"push_enabled":false,"sms_enabled":false}`
	w := a.do(http.MethodPut, "/preferences/CONNECTION_ACCEPTED", "20", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdatePreference_InvalidBody(t *testing.T) {
	a := newTestAPI(t)
	defer a.cleanup()

	w := a.do(http.MethodPut, "/preferences/CONNECTION_REQUEST", "20", `{invalid`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
