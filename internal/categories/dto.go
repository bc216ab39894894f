package categories

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// CreateCategoryInput creates a global category, or a project-scoped one when
// ProjectID is set.
type CreateCategoryInput struct {
	CategoryName string     `json:"categoryName" validate:"required,notblank,max=200"`
	ProjectID    *uuid.UUID `json:"projectId,omitempty"`
}

// UpdateCategoryInput renames a category.
type UpdateCategoryInput struct {
	CategoryName string `json:"categoryName" validate:"required,notblank,max=200"`
}

type CategoryDTO struct {
	ID           uuid.UUID  `json:"id"`
	CategoryName string     `json:"categoryName"`
	ProjectID    *uuid.UUID `json:"projectId"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastUpdated  time.Time  `json:"lastUpdated"`
}

func ToDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID,
		CategoryName: c.CategoryName,
		ProjectID:    c.ProjectID,
		CreatedAt:    c.CreatedAt,
		LastUpdated:  c.LastUpdated,
	}
}

func ToDTOs(rows []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, ToDTO(c))
	}
	return out
}
