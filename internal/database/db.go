package database

import (
	"fmt"
	"log"
	"time"

	"shipdesk/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Open подключается к БД журнала; postgres в docker-compose
// поднимается медленнее дашборда, поэтому несколько попыток.
func Open(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to audit DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			log.Println("connected to audit DB successfully")
			return db, nil
		}

		log.Printf("failed to connect to audit DB: %v", err)
		if i < maxAttempts {
			time.Sleep(retryBackoff)
		}
	}

	return nil, fmt.Errorf("connect to audit db after %d attempts: %w", maxAttempts, err)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return fmt.Errorf("migrate audit log: %w", err)
	}
	return nil
}
