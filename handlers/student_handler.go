package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/importer"
	"github.com/IshaanAggrawal/InstituteManager/models"
	"github.com/IshaanAggrawal/InstituteManager/storage"
)

type StudentHandler struct {
	Photos *storage.Store
}

func NewStudentHandler(photos *storage.Store) *StudentHandler {
	return &StudentHandler{Photos: photos}
}

// ===== Validation rules (registration form) =====
var (
	stuReRoll  = regexp.MustCompile(`^[A-Za-z0-9\-]{1,20}$`)
	stuRePhone = regexp.MustCompile(`^[0-9\- ]{1,15}$`)
	stuReBio   = regexp.MustCompile(`^[A-Za-z0-9\-]{0,50}$`)
)

type studentPayload struct {
	Name        string `json:"name"`
	RollNo      string `json:"roll_no"`
	Batch       string `json:"batch"`
	ParentPhone string `json:"parent_phone"`
	BiometricID string `json:"biometric_id"`
	PhotoURL    string `json:"photo_url"`
}

func (p *studentPayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.RollNo = strings.TrimSpace(p.RollNo)
	p.Batch = strings.TrimSpace(p.Batch)
	p.ParentPhone = strings.TrimSpace(p.ParentPhone)
	p.BiometricID = strings.TrimSpace(p.BiometricID)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validateStudent(p *studentPayload) map[string]string {
	errs := map[string]string{}

	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.RollNo == "" || !stuReRoll.MatchString(p.RollNo) {
		errs["roll_no"] = "roll number must be alphanumeric, max 20 chars"
	}
	if p.Batch == "" {
		errs["batch"] = "batch is required"
	}
	if !stuRePhone.MatchString(p.ParentPhone) {
		errs["parent_phone"] = "invalid phone format"
	} else if d := digitsOnly(p.ParentPhone); len(d) < 9 || len(d) > 10 {
		errs["parent_phone"] = "phone must have 9-10 digits"
	}
	if p.BiometricID != "" && !stuReBio.MatchString(p.BiometricID) {
		errs["biometric_id"] = "invalid biometric id"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ===== Handlers =====

// GET /api/students?q=&page=&size=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	size := 20
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 100 {
			size = 100
		} else {
			size = v
		}
	}

	tx := database.DB.Model(&models.Student{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("roll_no ILIKE ? OR name ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Student
	if err := tx.Order("id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

func (h *StudentHandler) Get(c echo.Context) error {
	var s models.Student
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateStudent(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	s := models.Student{
		Name: p.Name, RollNo: p.RollNo, Batch: p.Batch,
		ParentPhone: p.ParentPhone, BiometricID: p.BiometricID, PhotoURL: p.PhotoURL,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StudentHandler) Update(c echo.Context) error {
	var existing models.Student
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateStudent(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	existing.Name = p.Name
	existing.RollNo = p.RollNo
	existing.Batch = p.Batch
	existing.ParentPhone = p.ParentPhone
	existing.BiometricID = p.BiometricID
	if p.PhotoURL != "" {
		existing.PhotoURL = p.PhotoURL
	}

	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

func (h *StudentHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Student{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /api/students/import — multipart xlsx with columns
// name | roll_no | batch | parent_phone
func (h *StudentHandler) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FILE"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_FILE"})
	}
	defer src.Close()

	students, err := importer.ParseStudents(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "EMPTY_IMPORT", "detail": err.Error()})
	}
	if err := database.DB.Create(&students).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"inserted": len(students)})
}

// POST /api/students/:id/photo — multipart image; stores the file and
// records the public URL on the student
func (h *StudentHandler) UploadPhoto(c echo.Context) error {
	var s models.Student
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FILE"})
	}
	url, err := h.Photos.SavePhoto(fh, s.RollNo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "UPLOAD_FAILED"})
	}

	s.PhotoURL = url
	if err := database.DB.Save(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]string{"photo_url": url})
}
