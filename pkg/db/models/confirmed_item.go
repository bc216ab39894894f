package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConfirmedItem struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Image       string    `gorm:"column:image;not null"`
	CategoryID  uuid.UUID `gorm:"column:category_id;type:uuid;not null"`
	ProjectID   uuid.UUID `gorm:"column:project_id;type:uuid;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

func (i *ConfirmedItem) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
