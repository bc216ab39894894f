package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogueCandidate is an intake entry awaiting promotion. The tuple
// (project_id, category_id, name, image) is unique.
type CatalogueCandidate struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Image       string    `gorm:"column:image;not null"`
	CategoryID  uuid.UUID `gorm:"column:category_id;type:uuid;not null"`
	ProjectID   uuid.UUID `gorm:"column:project_id;type:uuid;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

func (c *CatalogueCandidate) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
