package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/models"
)

type BatchHandler struct{}

func NewBatchHandler() *BatchHandler { return &BatchHandler{} }

// GET /api/batches — populates selection controls; maintained externally
func (h *BatchHandler) List(c echo.Context) error {
	var items []models.Batch
	if err := database.DB.Order("name ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}
