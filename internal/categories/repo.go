package categories

import (
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// Repository groups the stores the category service reads and writes.
type Repository struct {
	categories *repo.Store[models.Category]
	projects   *repo.Store[models.Project]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		categories: repo.NewStore[models.Category](db, "category"),
		projects:   repo.NewStore[models.Project](db, "project"),
	}
}
