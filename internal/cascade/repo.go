package cascade

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
)

// Repository holds every store a cascade may delete from.
type Repository struct {
	projects   *repo.Store[models.Project]
	categories *repo.Store[models.Category]
	items      *repo.Store[models.ConfirmedItem]
	details    *repo.Store[models.ItemDetail]
	sequences  *repo.Store[models.LotSequence]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		projects:   repo.NewStore[models.Project](db, "project"),
		categories: repo.NewStore[models.Category](db, "category"),
		items:      repo.NewStore[models.ConfirmedItem](db, "item"),
		details:    repo.NewStore[models.ItemDetail](db, "item_detail"),
		sequences:  repo.NewStore[models.LotSequence](db, "lot_sequence"),
	}
}

func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{
		projects:   r.projects.WithTx(tx),
		categories: r.categories.WithTx(tx),
		items:      r.items.WithTx(tx),
		details:    r.details.WithTx(tx),
		sequences:  r.sequences.WithTx(tx),
	}
}

// itemIDs lists the ids of items matching filter.
func (r *Repository) itemIDs(ctx context.Context, filter repo.Filter) ([]uuid.UUID, error) {
	rows, err := r.items.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
