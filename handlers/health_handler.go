package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/database"
)

// GET /health
func Health(c echo.Context) error {
	dbOK := false
	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbOK = true
		}
	}
	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{"ok": dbOK})
}
