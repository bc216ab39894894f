package items

import (
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// Repository groups the stores touched by promotion and item maintenance.
type Repository struct {
	items      *repo.Store[models.ConfirmedItem]
	candidates *repo.Store[models.CatalogueCandidate]
	projects   *repo.Store[models.Project]
	categories *repo.Store[models.Category]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		items:      repo.NewStore[models.ConfirmedItem](db, "item"),
		candidates: repo.NewStore[models.CatalogueCandidate](db, "catalogue_candidate"),
		projects:   repo.NewStore[models.Project](db, "project"),
		categories: repo.NewStore[models.Category](db, "category"),
	}
}

// WithTx returns a repository whose stores run on tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{
		items:      r.items.WithTx(tx),
		candidates: r.candidates.WithTx(tx),
		projects:   r.projects.WithTx(tx),
		categories: r.categories.WithTx(tx),
	}
}
