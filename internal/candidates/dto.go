package candidates

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// CreateCandidateInput files a new intake entry under a project and category.
type CreateCandidateInput struct {
	Name       string    `json:"name" validate:"required,notblank,max=300"`
	Image      string    `json:"image" validate:"required"`
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	ProjectID  uuid.UUID `json:"projectId" validate:"required"`
}

// UpdateCandidateInput patches a candidate; nil fields are left unchanged.
type UpdateCandidateInput struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,max=300"`
	Image      *string    `json:"image,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
}

// Filter narrows a candidate listing.
type Filter struct {
	ProjectID  *uuid.UUID
	CategoryID *uuid.UUID
}

type CandidateDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CategoryID  uuid.UUID `json:"categoryId"`
	ProjectID   uuid.UUID `json:"projectId"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func ToDTO(c models.CatalogueCandidate) CandidateDTO {
	return CandidateDTO{
		ID:          c.ID,
		Name:        c.Name,
		Image:       c.Image,
		CategoryID:  c.CategoryID,
		ProjectID:   c.ProjectID,
		CreatedAt:   c.CreatedAt,
		LastUpdated: c.LastUpdated,
	}
}

func ToDTOs(rows []models.CatalogueCandidate) []CandidateDTO {
	out := make([]CandidateDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, ToDTO(c))
	}
	return out
}
