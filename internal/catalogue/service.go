package catalogue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/metrics"
)

// Row is one confirmed item joined with its category and detail. A nil
// pointer means the related record does not exist.
type Row struct {
	ID           uuid.UUID
	Name         string
	CategoryName *string
	LotNumber    *string
	Condition    *enums.ItemCondition
	Location     *models.Location
}

// Service builds the merged catalogue view.
type Service interface {
	Merge(ctx context.Context, projectID uuid.UUID) ([]Row, error)
}

type service struct {
	repo    *Repository
	metrics *metrics.CatalogueMetrics
}

func NewService(repository *Repository, m *metrics.CatalogueMetrics) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("catalogue repository required")
	}
	return &service{repo: repository, metrics: m}, nil
}

// Merge returns the project's items in creation order with category names and
// details attached. It only reads, so repeated calls return the same rows
// until something is written.
func (s *service) Merge(ctx context.Context, projectID uuid.UUID) (rows []Row, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveMerge(time.Since(start), err) }()

	items, err := s.repo.items.Find(ctx, repo.Filter{
		Eq:    map[string]any{"project_id": projectID},
		Order: repo.OldestFirst,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []Row{}, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	categorySet := make(map[uuid.UUID]struct{}, len(items))
	categoryIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		if _, ok := categorySet[item.CategoryID]; !ok {
			categorySet[item.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, item.CategoryID)
		}
	}

	categories, err := s.repo.categories.Find(ctx, repo.Filter{In: map[string]any{"id": categoryIDs}})
	if err != nil {
		return nil, err
	}
	details, err := s.repo.details.Find(ctx, repo.Filter{In: map[string]any{"item_id": itemIDs}})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID.String()] = c.CategoryName
	}
	byItem := make(map[string]models.ItemDetail, len(details))
	for _, d := range details {
		byItem[d.ItemID.String()] = d
	}

	rows = make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{ID: item.ID, Name: item.Name}
		if name, ok := names[item.CategoryID.String()]; ok {
			row.CategoryName = &name
		}
		if detail, ok := byItem[item.ID.String()]; ok {
			lot := detail.LotNumber
			condition := detail.Condition
			location := detail.Location
			row.LotNumber = &lot
			row.Condition = &condition
			row.Location = &location
		}
		rows = append(rows, row)
	}
	return rows, nil
}
