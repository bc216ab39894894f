package lots

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

const nextValueSQL = `INSERT INTO lot_sequences (project_id, last_value, last_updated)
VALUES (?, 1, ?)
ON CONFLICT (project_id) DO UPDATE
SET last_value = lot_sequences.last_value + 1, last_updated = excluded.last_updated
RETURNING last_value`

// Repository reads items and writes details plus the per-project lot counter.
type Repository struct {
	repo.Base
	items   *repo.Store[models.ConfirmedItem]
	details *repo.Store[models.ItemDetail]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Base:    repo.NewBase(db),
		items:   repo.NewStore[models.ConfirmedItem](db, "item"),
		details: repo.NewStore[models.ItemDetail](db, "item_detail"),
	}
}

func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{
		Base:    repo.NewBase(tx),
		items:   r.items.WithTx(tx),
		details: r.details.WithTx(tx),
	}
}

// NextValue increments the project's lot counter and returns the new value.
// The first call for a project returns 1.
func (r *Repository) NextValue(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var value int64
	err := r.DB(ctx).Raw(nextValueSQL, projectID, time.Now().UTC()).Scan(&value).Error
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lot counter increment failed").WithStep("lots.next_value")
	}
	if value < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeInternal, "lot counter returned no value").WithStep("lots.next_value")
	}
	return value, nil
}

// FindDetail returns the detail for itemID, or nil when none exists.
func (r *Repository) FindDetail(ctx context.Context, itemID uuid.UUID) (*models.ItemDetail, error) {
	detail, err := r.details.FindOne(ctx, repo.Filter{Eq: map[string]any{"item_id": itemID}})
	if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		return nil, nil
	}
	return detail, err
}
