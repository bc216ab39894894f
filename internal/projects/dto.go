package projects

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
)

// CreateProjectInput is the payload for creating a project.
type CreateProjectInput struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// RenameProjectInput is the payload for renaming a project.
type RenameProjectInput struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

// StatusInput is the payload for PATCH /projects/{id}/status.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=open closed"`
}

// ProjectDTO is the project representation returned to clients.
type ProjectDTO struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Status      enums.ProjectStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// SummaryDTO is a listed project with its category and item counts.
type SummaryDTO struct {
	ProjectDTO
	CategoryCount int64 `json:"categoryCount"`
	ItemCount     int64 `json:"itemCount"`
}

func ToDTO(p models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		LastUpdated: p.LastUpdated,
	}
}
