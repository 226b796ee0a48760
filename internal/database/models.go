// Package database предоставляет модели данных и репозиторий для работы с PostgreSQL.
// Использует GORM ORM с prepared statements для защиты от SQL injection.
package database

import "time"

// Recording представляет одну задачу записи конференции.
// Статусы: running, completed, failed.
type Recording struct {
	ID         uint      `gorm:"primaryKey"`
	TargetURL  string    `gorm:"type:text;not null"`           // Адрес конференции
	OutputPath string    `gorm:"type:text;not null"`           // Путь к видеофайлу
	DurationMs int64     `gorm:"not null"`                     // Длительность записи в миллисекундах
	Status     string    `gorm:"type:varchar(32);not null;default:'running'"` // Статус выполнения
	ErrorText  string    `gorm:"type:text"`                    // Текст ошибки (если задача упала)
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
