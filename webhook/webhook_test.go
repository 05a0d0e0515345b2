package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostDeliversJSON(t *testing.T) {
	var got FeeReminderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	payload := FeeReminderPayload{Students: []DefaulterEntry{
		{Name: "Aarav Shah", RollNo: "101", Phone: "9876500001", Batch: "Class 12-A", DueAmount: 2500, DueDate: "2024-02-01"},
	}}
	err := NewClient().Post(srv.URL, payload)
	assert.NoError(t, err)
	assert.Len(t, got.Students, 1)
	assert.Equal(t, "101", got.Students[0].RollNo)
}

func TestPostNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient().Post(srv.URL, map[string]string{"x": "y"})
	assert.Error(t, err)
}

func TestPostMissingURL(t *testing.T) {
	err := NewClient().Post("", map[string]string{"x": "y"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
