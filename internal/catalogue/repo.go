package catalogue

import (
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

type Repository struct {
	items      *repo.Store[models.ConfirmedItem]
	categories *repo.Store[models.Category]
	details    *repo.Store[models.ItemDetail]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		items:      repo.NewStore[models.ConfirmedItem](db, "item"),
		categories: repo.NewStore[models.Category](db, "category"),
		details:    repo.NewStore[models.ItemDetail](db, "item_detail"),
	}
}
