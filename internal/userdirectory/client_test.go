package userdirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetUserByID_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/20" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":20,"display_name":"Bob Example","email":"bob@example.com"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	user, err := client.GetUserByID(context.Background(), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID != 20 {
		t.Errorf("expected id 20, got %d", user.ID)
	}
	if user.DisplayName != "Bob Example" {
		t.Errorf("expected display name Bob Example, got %s", user.DisplayName)
	}
	if user.Email != "bob@example.com" {
		t.Errorf("expected email bob@example.com, got %s", user.Email)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	if _, err := client.GetUserByID(context.Background(), 99); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByID_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	if _, err := client.GetUserByID(context.Background(), 20); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestGetUserByID_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	if _, err := client.GetUserByID(context.Background(), 20); err == nil {
		t.Fatal("expected error for invalid body")
	}
}

func TestGetUserByID_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.GetUserByID(ctx, 20); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
