package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	// n8n automation endpoints (optional; handlers report missing config)
	FeeReminderWebhook string
	ResultsWebhook     string
	ScheduleWebhook    string

	// local photo storage
	UploadDir     string
	PublicBaseURL string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; production sets real env vars
	_ = godotenv.Load()

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "institute"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),

		FeeReminderWebhook: os.Getenv("N8N_FEE_REMINDER_WEBHOOK"),
		ResultsWebhook:     os.Getenv("N8N_RESULTS_WEBHOOK"),
		ScheduleWebhook:    os.Getenv("N8N_SCHEDULE_WEBHOOK"),

		UploadDir:     get("UPLOAD_DIR", "uploads"),
		PublicBaseURL: get("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
