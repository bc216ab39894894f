package projects

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// Repository exposes project persistence plus the counts shown in listings.
type Repository struct {
	projects   *repo.Store[models.Project]
	categories *repo.Store[models.Category]
	items      *repo.Store[models.ConfirmedItem]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		projects:   repo.NewStore[models.Project](db, "project"),
		categories: repo.NewStore[models.Category](db, "category"),
		items:      repo.NewStore[models.ConfirmedItem](db, "item"),
	}
}

type projectCount struct {
	ProjectID uuid.UUID
	Total     int64
}

// ItemCounts returns the number of confirmed items per project.
func (r *Repository) ItemCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	return groupCount(r.items.DB(ctx).Model(&models.ConfirmedItem{}), "item")
}

// ScopedCategoryCounts returns the number of project-scoped categories per project.
func (r *Repository) ScopedCategoryCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	q := r.categories.DB(ctx).Model(&models.Category{}).Where("project_id IS NOT NULL")
	return groupCount(q, "category")
}

// GlobalCategoryCount counts categories shared by every project.
func (r *Repository) GlobalCategoryCount(ctx context.Context) (int64, error) {
	return r.categories.Count(ctx, repo.Filter{Eq: map[string]any{"project_id": nil}})
}

func groupCount(q *gorm.DB, entity string) (map[uuid.UUID]int64, error) {
	var rows []projectCount
	err := q.Select("project_id AS project_id, COUNT(*) AS total").Group("project_id").Scan(&rows).Error
	if err != nil {
		return nil, repo.Translate(entity, "count_by_project", err)
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row.Total
	}
	return counts, nil
}
