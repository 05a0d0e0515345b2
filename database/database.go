package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/IshaanAggrawal/InstituteManager/config"
	"github.com/IshaanAggrawal/InstituteManager/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Attendance{},
		&models.Fee{},
		&models.Transaction{},
		&models.TestSchedule{},
		&models.Batch{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	if err := installSyncProcedure(); err != nil {
		log.Fatalf("install sync procedure failed: %v", err)
	}
}

// installSyncProcedure (re)creates the one server-side routine the app calls
// by name: it backfills an Absent row on a test date for every student of the
// schedule's batch that has no punch that day.
func installSyncProcedure() error {
	const fn = `
CREATE OR REPLACE FUNCTION sync_schedule_attendance(p_schedule_id BIGINT)
RETURNS INTEGER AS $$
DECLARE
	v_batch TEXT;
	v_date  TEXT;
	v_count INTEGER;
BEGIN
	SELECT batch, test_date INTO v_batch, v_date
	FROM test_schedules WHERE id = p_schedule_id;
	IF v_batch IS NULL THEN
		RAISE EXCEPTION 'schedule % not found', p_schedule_id;
	END IF;

	INSERT INTO attendances (student_id, timestamp, date, status, type, created_at)
	SELECT s.id, NOW(), v_date, 'Absent', 'In', NOW()
	FROM students s
	WHERE s.batch = v_batch
	  AND NOT EXISTS (
		SELECT 1 FROM attendances a
		WHERE a.student_id = s.id AND a.date = v_date
	  );

	GET DIAGNOSTICS v_count = ROW_COUNT;
	RETURN v_count;
END;
$$ LANGUAGE plpgsql;`
	return DB.Exec(fn).Error
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
