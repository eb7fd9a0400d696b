package database

import (
	"log"

	"shipdesk/internal/models"

	"gorm.io/gorm"
)

// Journal: журнал аудита дашборда
type Journal interface {
	Record(entry models.AuditLog)
	Recent(limit int) ([]models.AuditLog, error)
	Enabled() bool
}

type gormJournal struct {
	db *gorm.DB
}

func NewJournal(db *gorm.DB) Journal {
	if db == nil {
		return NopJournal{}
	}
	return &gormJournal{db: db}
}

// Record не должен ронять основной сценарий: ошибка только в лог
func (j *gormJournal) Record(entry models.AuditLog) {
	if err := j.db.Create(&entry).Error; err != nil {
		log.Printf("audit: failed to record %s/%s %s: %v", entry.Entity, entry.EntityID, entry.Action, err)
	}
}

func (j *gormJournal) Recent(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := j.db.
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (j *gormJournal) Enabled() bool { return true }

// NopJournal: DB_DSN не задан, журнал выключен
type NopJournal struct{}

func (NopJournal) Record(models.AuditLog) {}

func (NopJournal) Recent(int) ([]models.AuditLog, error) { return nil, nil }

func (NopJournal) Enabled() bool { return false }
