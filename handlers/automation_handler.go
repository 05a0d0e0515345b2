package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/importer"
	"github.com/IshaanAggrawal/InstituteManager/models"
	"github.com/IshaanAggrawal/InstituteManager/webhook"
)

// AutomationHandler forwards payloads to the n8n workflows that send the
// WhatsApp notifications: fee reminders and parsed test results.
type AutomationHandler struct {
	Cfg   *config.Config
	Hooks *webhook.Client
}

func NewAutomationHandler(cfg *config.Config, hooks *webhook.Client) *AutomationHandler {
	return &AutomationHandler{Cfg: cfg, Hooks: hooks}
}

// POST /api/automation/fee-reminders — collects current defaulters and
// triggers the reminder workflow
func (h *AutomationHandler) TriggerFeeReminders(c echo.Context) error {
	var fees []models.Fee
	if err := database.DB.Preload("Student").Find(&fees).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	defaulters := buildDefaulterEntries(fees)
	if len(defaulters) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"success": false, "message": "No pending dues found."})
	}

	if err := h.Hooks.Post(h.Cfg.FeeReminderWebhook, webhook.FeeReminderPayload{Students: defaulters}); err != nil {
		if err == webhook.ErrNotConfigured {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "WEBHOOK_NOT_CONFIGURED"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "WEBHOOK_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Sent reminders to %d students.", len(defaulters)),
	})
}

// POST /api/automation/results — relays already-parsed result rows
func (h *AutomationHandler) ForwardResults(c echo.Context) error {
	var req struct {
		Results []map[string]string `json:"results"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if len(req.Results) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "EMPTY_RESULTS"})
	}
	return h.dispatchResults(c, req.Results)
}

// POST /api/results/import — parses an uploaded result sheet server-side
// and dispatches it the same way
func (h *AutomationHandler) ImportResults(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FILE"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_FILE"})
	}
	defer src.Close()

	records, err := importer.ParseRecords(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "EMPTY_IMPORT", "detail": err.Error()})
	}
	return h.dispatchResults(c, records)
}

func (h *AutomationHandler) dispatchResults(c echo.Context, records []map[string]string) error {
	payload := webhook.ResultsPayload{
		Data:      records,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Hooks.Post(h.Cfg.ResultsWebhook, payload); err != nil {
		if err == webhook.ErrNotConfigured {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "WEBHOOK_NOT_CONFIGURED"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "WEBHOOK_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully sent %d records to processing.", len(records)),
	})
}
