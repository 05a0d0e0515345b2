package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/webhook"
)

func newJSONRequest(method, path string, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestForwardResultsRelaysToWebhook(t *testing.T) {
	var got webhook.ResultsPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(b, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := NewAutomationHandler(&config.Config{ResultsWebhook: srv.URL}, webhook.NewClient())

	body, _ := json.Marshal(map[string]any{
		"results": []map[string]string{
			{"RollNo": "101", "Subject": "Maths", "Marks": "87"},
			{"RollNo": "102", "Subject": "Maths", "Marks": "91"},
		},
	})
	ctx, rec := newJSONRequest(http.MethodPost, "/api/automation/results", body)

	assert.NoError(t, h.ForwardResults(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, got.Data, 2)
	assert.NotEmpty(t, got.Timestamp)
}

func TestForwardResultsEmptyBody(t *testing.T) {
	h := NewAutomationHandler(&config.Config{ResultsWebhook: "http://unused"}, webhook.NewClient())

	body, _ := json.Marshal(map[string]any{"results": []map[string]string{}})
	ctx, rec := newJSONRequest(http.MethodPost, "/api/automation/results", body)

	assert.NoError(t, h.ForwardResults(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForwardResultsMissingWebhookConfig(t *testing.T) {
	// no URL configured: the handler reports a server error, never panics
	h := NewAutomationHandler(&config.Config{}, webhook.NewClient())

	body, _ := json.Marshal(map[string]any{
		"results": []map[string]string{{"RollNo": "101"}},
	})
	ctx, rec := newJSONRequest(http.MethodPost, "/api/automation/results", body)

	assert.NoError(t, h.ForwardResults(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "WEBHOOK_NOT_CONFIGURED", resp["error"])
}

func TestForwardResultsDownstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := NewAutomationHandler(&config.Config{ResultsWebhook: srv.URL}, webhook.NewClient())

	body, _ := json.Marshal(map[string]any{
		"results": []map[string]string{{"RollNo": "101"}},
	})
	ctx, rec := newJSONRequest(http.MethodPost, "/api/automation/results", body)

	assert.NoError(t, h.ForwardResults(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
