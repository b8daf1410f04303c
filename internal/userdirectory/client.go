package userdirectory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUserNotFound is returned when the directory has no record for the id.
var ErrUserNotFound = errors.New("user not found")

// User is the profile subset the notification pipeline needs.
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Client talks to the external user-profile service. Callers must treat it as
// unreliable: every call is bounded by the client timeout and failures must
// never fail the encompassing operation.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a directory client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// GetUserByID fetches one user profile.
func (c *Client) GetUserByID(ctx context.Context, id int64) (*User, error) {
	url := fmt.Sprintf("%s/users/%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user lookup returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("user lookup returned invalid body: %w", err)
	}
	return &user, nil
}
