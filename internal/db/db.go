package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	"github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Prestation{},
		&models.OpeningHours{},
		&models.AvailableSlot{},
		&models.BlockedDate{},
		&models.BlockedSlot{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// A autoridade final contra double-booking é o banco, não o pre-check
	// em memória: índice único parcial sobre os status que ocupam créneau.
	blocking := "'" + strings.Join(appointment.BlockingStatuses(), "', '") + "'"
	db.Exec(fmt.Sprintf(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
        ON appointments (appointment_date, appointment_time)
        WHERE status IN (%s)
    `, blocking))

	return db
}
