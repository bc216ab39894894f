package lots

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
)

// LocationInput is where an item sits; every part is optional.
type LocationInput struct {
	Area  string `json:"area,omitempty" validate:"max=200"`
	Zone  string `json:"zone,omitempty" validate:"max=200"`
	Floor string `json:"floor,omitempty" validate:"max=200"`
}

// UpsertDetailInput records condition and location for an item. ProjectID
// must name the item's project.
type UpsertDetailInput struct {
	ProjectID   *uuid.UUID    `json:"projectId" validate:"required"`
	Condition   string        `json:"condition" validate:"required"`
	DamageTypes []string      `json:"damageTypes,omitempty" validate:"max=50,dive,max=100"`
	Location    LocationInput `json:"location"`
}

type LocationDTO struct {
	Area  string `json:"area,omitempty"`
	Zone  string `json:"zone,omitempty"`
	Floor string `json:"floor,omitempty"`
}

type DetailDTO struct {
	ID          uuid.UUID           `json:"id"`
	ItemID      uuid.UUID           `json:"itemId"`
	ProjectID   uuid.UUID           `json:"projectId"`
	Condition   enums.ItemCondition `json:"condition"`
	DamageTypes []string            `json:"damageTypes"`
	LotNumber   string              `json:"lotNumber"`
	Location    LocationDTO         `json:"location"`
	CreatedAt   time.Time           `json:"createdAt"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

func ToDTO(d models.ItemDetail) DetailDTO {
	damage := []string(d.DamageTypes)
	if damage == nil {
		damage = []string{}
	}
	return DetailDTO{
		ID:          d.ID,
		ItemID:      d.ItemID,
		ProjectID:   d.ProjectID,
		Condition:   d.Condition,
		DamageTypes: damage,
		LotNumber:   d.LotNumber,
		Location: LocationDTO{
			Area:  d.Location.Area,
			Zone:  d.Location.Zone,
			Floor: d.Location.Floor,
		},
		CreatedAt:   d.CreatedAt,
		LastUpdated: d.LastUpdated,
	}
}
