package models

import (
	"time"

	"github.com/google/uuid"
)

// LotSequence is the per-project lot counter. LastValue is the most recently
// issued lot number.
type LotSequence struct {
	ProjectID   uuid.UUID `gorm:"column:project_id;type:uuid;primaryKey"`
	LastValue   int64     `gorm:"column:last_value;not null;default:0"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime"`
}
