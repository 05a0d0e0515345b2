package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /api/dashboard/stats
// Counts for the overview cards: total students, present today, fees
// collected, pending dues.
func (h *DashboardHandler) Stats(c echo.Context) error {
	var (
		totalStudents int64
		presentToday  int64
	)
	today := time.Now().Format("2006-01-02")

	database.DB.Model(&models.Student{}).Count(&totalStudents)
	database.DB.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, models.AttendancePresent).
		Count(&presentToday)

	var sums struct {
		Paid  float64
		Total float64
	}
	if err := database.DB.Model(&models.Fee{}).
		Select("COALESCE(SUM(paid_amount),0) AS paid, COALESCE(SUM(total_amount),0) AS total").
		Scan(&sums).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total_students": totalStudents,
		"present_today":  presentToday,
		"fees_collected": sums.Paid,
		"pending_fees":   sums.Total - sums.Paid,
	})
}
