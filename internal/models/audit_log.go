package models

import "time"

// AuditLog: локальный журнал действий дашборда.
// Сами данные живут в бэкенде, здесь только кто и что сделал через консоль.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	UserID   string `gorm:"size:64"`
	UserName string `gorm:"size:255"`

	Entity   string `gorm:"size:50;not null"` // "vessel", "project", "ga_input", "hull", "session"
	EntityID string `gorm:"size:64;index"`
	Action   string `gorm:"size:50;not null"` // "create", "update", "login", "orphaned" и т.п.
	Details  string `gorm:"type:text"`
}
