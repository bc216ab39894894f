package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is global unless ProjectID is set.
type Category struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryName string     `gorm:"column:category_name;not null;unique"`
	ProjectID    *uuid.UUID `gorm:"column:project_id;type:uuid"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	LastUpdated  time.Time  `gorm:"column:last_updated;autoUpdateTime"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
