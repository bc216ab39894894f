package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
)

// Project groups the categories, candidates and items catalogued together.
type Project struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string              `gorm:"column:name;not null"`
	Status      enums.ProjectStatus `gorm:"column:status;not null;default:'open'"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	LastUpdated time.Time           `gorm:"column:last_updated;autoUpdateTime"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	if p.Status == "" {
		p.Status = enums.ProjectStatusOpen
	}
	return nil
}
