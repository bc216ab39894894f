package items

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// CreateItemInput creates a confirmed item directly, bypassing intake.
type CreateItemInput struct {
	Name       string    `json:"name" validate:"required,notblank,max=300"`
	Image      string    `json:"image" validate:"required"`
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	ProjectID  uuid.UUID `json:"projectId" validate:"required"`
}

// UpdateItemInput patches a confirmed item; nil fields are left unchanged.
type UpdateItemInput struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,max=300"`
	Image      *string    `json:"image,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
}

// Filter narrows an item listing.
type Filter struct {
	ProjectID  *uuid.UUID
	CategoryID *uuid.UUID
}

type ItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CategoryID  uuid.UUID `json:"categoryId"`
	ProjectID   uuid.UUID `json:"projectId"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func ToDTO(i models.ConfirmedItem) ItemDTO {
	return ItemDTO{
		ID:          i.ID,
		Name:        i.Name,
		Image:       i.Image,
		CategoryID:  i.CategoryID,
		ProjectID:   i.ProjectID,
		CreatedAt:   i.CreatedAt,
		LastUpdated: i.LastUpdated,
	}
}

func ToDTOs(rows []models.ConfirmedItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(rows))
	for _, i := range rows {
		out = append(out, ToDTO(i))
	}
	return out
}
