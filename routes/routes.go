package routes

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/handlers"
	"github.com/IshaanAggrawal/InstituteManager/middlewares"
	"github.com/IshaanAggrawal/InstituteManager/storage"
	"github.com/IshaanAggrawal/InstituteManager/webhook"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	photos, err := storage.New(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("init photo storage: %v", err)
	}
	hooks := webhook.NewClient()

	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler(photos)
	att := handlers.NewAttendanceHandler()
	fee := handlers.NewFeeHandler()
	sch := handlers.NewScheduleHandler(cfg, hooks, photos)
	auto := handlers.NewAutomationHandler(cfg, hooks)
	dash := handlers.NewDashboardHandler()
	bat := handlers.NewBatchHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.Static("/uploads", cfg.UploadDir)

	e.POST("/auth/signup", auth.Signup)
	e.POST("/auth/login", auth.Login)

	// ===== Protected =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	e.GET("/auth/me", auth.Me, authMW)
	e.POST("/auth/logout", auth.Logout, authMW)

	api := e.Group("/api", authMW)
	adminOnly := middlewares.RequireRole("admin")

	// Students
	api.GET("/students", std.List)
	api.GET("/students/:id", std.Get)
	api.POST("/students", std.Create)
	api.PUT("/students/:id", std.Update)
	api.DELETE("/students/:id", std.Delete, adminOnly)
	api.POST("/students/import", std.Import)
	api.POST("/students/:id/photo", std.UploadPhoto)

	// Attendance (read-only aside from the sync trigger)
	api.GET("/attendance", att.List)
	api.POST("/attendance/sync", att.Sync)

	// Fees & ledger
	api.GET("/fees", fee.List)
	api.POST("/fees", fee.Create)
	api.POST("/fees/:id/payments", fee.RecordPayment)
	api.GET("/fees/:id/transactions", fee.Transactions)
	api.GET("/fees/defaulters", fee.Defaulters)

	// Test schedules
	api.GET("/schedules", sch.List)
	api.POST("/schedules", sch.Create)
	api.DELETE("/schedules/:id", sch.Delete, adminOnly)
	api.POST("/schedules/import", sch.Import)
	api.POST("/schedules/photo", sch.UploadPhoto)

	// Automation triggers
	api.POST("/automation/fee-reminders", auto.TriggerFeeReminders)
	api.POST("/automation/results", auto.ForwardResults)
	api.POST("/results/import", auto.ImportResults)

	// Misc reads
	api.GET("/batches", bat.List)
	api.GET("/dashboard/stats", dash.Stats)
}
