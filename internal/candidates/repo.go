package candidates

import (
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// Repository groups the stores used to file intake candidates.
type Repository struct {
	candidates *repo.Store[models.CatalogueCandidate]
	projects   *repo.Store[models.Project]
	categories *repo.Store[models.Category]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		candidates: repo.NewStore[models.CatalogueCandidate](db, "catalogue_candidate"),
		projects:   repo.NewStore[models.Project](db, "project"),
		categories: repo.NewStore[models.Category](db, "category"),
	}
}

// Candidates exposes the candidate store to the promotion service.
func (r *Repository) Candidates() *repo.Store[models.CatalogueCandidate] {
	return r.candidates
}
