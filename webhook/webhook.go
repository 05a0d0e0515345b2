// Package webhook posts JSON payloads to the n8n automation endpoints.
// Delivery is at-most-once and best-effort: one POST, no retry, any 2xx
// counts as delivered.
package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrNotConfigured = errors.New("webhook URL not configured")

type Client struct {
	httpc *http.Client
}

func NewClient() *Client {
	return &Client{httpc: &http.Client{Timeout: 30 * time.Second}}
}

// Payload shapes consumed by the automation workflows.

type DefaulterEntry struct {
	Name      string  `json:"name"`
	RollNo    string  `json:"roll_no"`
	Phone     string  `json:"phone"`
	Batch     string  `json:"batch"`
	DueAmount float64 `json:"due_amount"`
	DueDate   string  `json:"due_date"`
}

type FeeReminderPayload struct {
	Students []DefaulterEntry `json:"students"`
}

type ResultsPayload struct {
	Data      []map[string]string `json:"data"`
	Timestamp string              `json:"timestamp"`
}

type SchedulePhotoPayload struct {
	ImageURL string `json:"imageUrl"`
}

// Post serializes payload and delivers it to url. A blank url reports
// ErrNotConfigured so callers can surface a config error instead of failing
// mid-flight.
func (c *Client) Post(url string, payload any) error {
	if url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	resp, err := c.httpc.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with %d", resp.StatusCode)
	}
	return nil
}
