package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
)

// Location is where an item physically sits; every part is optional.
type Location struct {
	Area  string `gorm:"column:area"`
	Zone  string `gorm:"column:zone"`
	Floor string `gorm:"column:floor"`
}

// IsZero reports whether no part of the location was recorded.
func (l Location) IsZero() bool {
	return l.Area == "" && l.Zone == "" && l.Floor == ""
}

// ItemDetail holds the condition, damage and lot number of a confirmed item.
// At most one detail exists per item.
type ItemDetail struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID      uuid.UUID           `gorm:"column:item_id;type:uuid;not null;unique"`
	ProjectID   uuid.UUID           `gorm:"column:project_id;type:uuid;not null"`
	Condition   enums.ItemCondition `gorm:"column:condition;not null"`
	DamageTypes pq.StringArray      `gorm:"column:damage_types;type:text[]"`
	LotNumber   string              `gorm:"column:lot_number;not null"`
	Location    Location            `gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	LastUpdated time.Time           `gorm:"column:last_updated;autoUpdateTime"`
}

func (d *ItemDetail) BeforeCreate(*gorm.DB) error {
	ensureID(&d.ID)
	return nil
}
