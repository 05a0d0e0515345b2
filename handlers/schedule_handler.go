package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/importer"
	"github.com/IshaanAggrawal/InstituteManager/models"
	"github.com/IshaanAggrawal/InstituteManager/storage"
	"github.com/IshaanAggrawal/InstituteManager/webhook"
)

type ScheduleHandler struct {
	Cfg    *config.Config
	Hooks  *webhook.Client
	Photos *storage.Store
}

func NewScheduleHandler(cfg *config.Config, hooks *webhook.Client, photos *storage.Store) *ScheduleHandler {
	return &ScheduleHandler{Cfg: cfg, Hooks: hooks, Photos: photos}
}

type schedulePayload struct {
	Subject   string `json:"subject"    validate:"required"`
	Batch     string `json:"batch"      validate:"required"`
	TestDate  string `json:"test_date"  validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	Duration  string `json:"duration"`
}

// GET /api/schedules — upcoming first
func (h *ScheduleHandler) List(c echo.Context) error {
	var items []models.TestSchedule
	if err := database.DB.Order("test_date ASC, start_time ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /api/schedules
func (h *ScheduleHandler) Create(c echo.Context) error {
	var p schedulePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	ts := models.TestSchedule{
		Subject: p.Subject, Batch: p.Batch,
		TestDate: p.TestDate, StartTime: p.StartTime, Duration: p.Duration,
	}
	if err := database.DB.Create(&ts).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ts)
}

// DELETE /api/schedules/:id — cancellation
func (h *ScheduleHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.TestSchedule{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /api/schedules/import — multipart xlsx with columns
// subject | date | time | batch | duration
func (h *ScheduleHandler) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FILE"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_FILE"})
	}
	defer src.Close()

	items, err := importer.ParseSchedules(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "EMPTY_IMPORT", "detail": err.Error()})
	}
	if err := database.DB.Create(&items).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"inserted": len(items)})
}

// POST /api/schedules/photo — stores a handwritten-schedule image and hands
// its public URL to the automation workflow
func (h *ScheduleHandler) UploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FILE"})
	}
	url, err := h.Photos.SavePhoto(fh, "schedule")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "UPLOAD_FAILED"})
	}

	if err := h.Hooks.Post(h.Cfg.ScheduleWebhook, webhook.SchedulePhotoPayload{ImageURL: url}); err != nil {
		if err == webhook.ErrNotConfigured {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "WEBHOOK_NOT_CONFIGURED"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "WEBHOOK_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "imageUrl": url})
}
