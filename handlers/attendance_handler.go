package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/database"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

// GET /api/attendance?date=YYYY-MM-DD&status=&studentId=&limit=
// Joined with students for name/roll_no; newest punches first.
func (h *AttendanceHandler) List(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	status := strings.TrimSpace(c.QueryParam("status"))
	studentID := strings.TrimSpace(c.QueryParam("studentId"))
	limit := 50
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 500 {
		limit = v
	}

	type row struct {
		ID          uint   `json:"id"`
		StudentID   uint   `json:"student_id"`
		Timestamp   string `json:"timestamp"`
		Date        string `json:"date"`
		Status      string `json:"status"`
		Type        string `json:"type"`
		StudentName string `json:"student_name"`
		RollNo      string `json:"roll_no"`
	}

	tx := database.DB.Table("attendances AS a").
		Select("a.id, a.student_id, a.timestamp, a.date, a.status, a.type, s.name AS student_name, s.roll_no").
		Joins("JOIN students s ON s.id = a.student_id")

	if date != "" {
		tx = tx.Where("a.date = ?", date)
	}
	if status != "" {
		tx = tx.Where("a.status = ?", status)
	}
	if studentID != "" {
		tx = tx.Where("a.student_id = ?", studentID)
	}

	var rows []row
	if err := tx.Order("a.timestamp DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if rows == nil {
		rows = []row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /api/attendance/sync {schedule_id}
// Invokes the server-side procedure that backfills Absent rows for the
// schedule's batch on the test date.
func (h *AttendanceHandler) Sync(c echo.Context) error {
	var req struct {
		ScheduleID uint `json:"schedule_id"`
	}
	if err := c.Bind(&req); err != nil || req.ScheduleID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	var marked int
	if err := database.DB.
		Raw("SELECT sync_schedule_attendance(?)", req.ScheduleID).
		Scan(&marked).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "SYNC_FAILED", "detail": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "marked_absent": marked})
}
