package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IshaanAggrawal/InstituteManager/database"
	"github.com/IshaanAggrawal/InstituteManager/models"
	"github.com/IshaanAggrawal/InstituteManager/webhook"
)

type FeeHandler struct{}

func NewFeeHandler() *FeeHandler { return &FeeHandler{} }

/* ====================== DTOs ====================== */

type feePayload struct {
	StudentID   uint    `json:"student_id"   validate:"required"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
	PaidAmount  float64 `json:"paid_amount"  validate:"gte=0"`
	DueDate     string  `json:"due_date"     validate:"required,datetime=2006-01-02"`
}

type paymentPayload struct {
	Amount      float64 `json:"amount"        validate:"required,gt=0"`
	PaymentMode string  `json:"payment_mode"  validate:"required,oneof=UPI Cash Cheque"`
	NextDueDate string  `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	Remarks     string  `json:"remarks"`
}

// feeView adds the derived ledger fields the table renders.
type feeView struct {
	models.Fee
	Balance float64 `json:"balance"`
	Status  string  `json:"status"`
}

func toFeeView(f models.Fee, now time.Time) feeView {
	return feeView{Fee: f, Balance: f.Balance(), Status: f.StatusAt(now)}
}

// validatePayment applies the ledger rules: no overpayment, and a partial
// payment must carry the next due date for the remaining balance.
func validatePayment(f *models.Fee, p *paymentPayload) string {
	if p.Amount > f.Balance() {
		return "OVERPAYMENT"
	}
	if f.Balance()-p.Amount > 0 && p.NextDueDate == "" {
		return "NEXT_DUE_DATE_REQUIRED"
	}
	return ""
}

// buildDefaulterEntries keeps only fees with an outstanding balance and maps
// them to the reminder payload shape. Filtering happens app-side because the
// backend cannot compare two columns in a plain select.
func buildDefaulterEntries(fees []models.Fee) []webhook.DefaulterEntry {
	var out []webhook.DefaulterEntry
	for _, f := range fees {
		if f.PaidAmount >= f.TotalAmount {
			continue
		}
		out = append(out, webhook.DefaulterEntry{
			Name:      f.Student.Name,
			RollNo:    f.Student.RollNo,
			Phone:     f.Student.ParentPhone,
			Batch:     f.Student.Batch,
			DueAmount: f.TotalAmount - f.PaidAmount,
			DueDate:   f.DueDate,
		})
	}
	return out
}

/* ====================== Handlers ====================== */

// GET /api/fees — joined with student fields, ordered by due date
func (h *FeeHandler) List(c echo.Context) error {
	var fees []models.Fee
	if err := database.DB.Preload("Student").Order("due_date ASC").Find(&fees).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	now := time.Now()
	out := make([]feeView, 0, len(fees))
	for _, f := range fees {
		out = append(out, toFeeView(f, now))
	}
	return c.JSON(http.StatusOK, out)
}

// POST /api/fees
func (h *FeeHandler) Create(c echo.Context) error {
	var p feePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	var stu models.Student
	if err := database.DB.First(&stu, "id = ?", p.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "STUDENT_NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	f := models.Fee{
		StudentID:   p.StudentID,
		TotalAmount: p.TotalAmount,
		PaidAmount:  p.PaidAmount,
		DueDate:     p.DueDate,
	}
	if err := database.DB.Create(&f).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	f.Student = stu
	return c.JSON(http.StatusCreated, toFeeView(f, time.Now()))
}

// POST /api/fees/:id/payments — records a (possibly partial) payment.
// The transaction insert and the fee update run in one DB transaction with
// the fee row locked, so concurrent submissions serialize.
func (h *FeeHandler) RecordPayment(c echo.Context) error {
	var p paymentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	var updated models.Fee
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var fee models.Fee
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fee, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		if code := validatePayment(&fee, &p); code != "" {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": code})
		}

		remaining := fee.Balance() - p.Amount
		remarks := p.Remarks
		if remarks == "" {
			if remaining > 0 {
				remarks = fmt.Sprintf("Partial. Due: %s", p.NextDueDate)
			} else {
				remarks = "Full Settlement"
			}
		}

		t := models.Transaction{
			FeeID:           fee.ID,
			Amount:          p.Amount,
			PaymentMode:     p.PaymentMode,
			Remarks:         remarks,
			TransactionDate: time.Now(),
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}

		fee.PaidAmount += p.Amount
		if remaining > 0 {
			fee.DueDate = p.NextDueDate
		}
		if err := tx.Save(&fee).Error; err != nil {
			return err
		}
		updated = fee
		return nil
	})
	if txErr != nil {
		if he, ok := txErr.(*echo.HTTPError); ok {
			return he
		}
		if txErr == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "PAYMENT_FAILED"})
	}

	database.DB.Preload("Student").First(&updated, updated.ID)
	return c.JSON(http.StatusOK, toFeeView(updated, time.Now()))
}

// GET /api/fees/:id/transactions — payment history, newest first
func (h *FeeHandler) Transactions(c echo.Context) error {
	var rows []models.Transaction
	if err := database.DB.
		Where("fee_id = ?", c.Param("id")).
		Order("transaction_date DESC").
		Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/fees/defaulters — students with pending dues
func (h *FeeHandler) Defaulters(c echo.Context) error {
	var fees []models.Fee
	if err := database.DB.Preload("Student").Find(&fees).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	entries := buildDefaulterEntries(fees)
	if entries == nil {
		entries = []webhook.DefaulterEntry{}
	}
	return c.JSON(http.StatusOK, map[string]any{"students": entries})
}
