package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/outbox"
)

const eventSource = "items"

// Service promotes candidates into confirmed items and maintains them.
// Deleting an item belongs to the cascade service.
type Service interface {
	Promote(ctx context.Context, candidateID uuid.UUID) (*models.ConfirmedItem, error)
	CreateConfirmedItem(ctx context.Context, input CreateItemInput) (*models.ConfirmedItem, error)
	List(ctx context.Context, filter Filter) ([]models.ConfirmedItem, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ConfirmedItem, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*models.ConfirmedItem, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	repo   *Repository
	tx     txRunner
	events eventEmitter
}

func NewService(repository *Repository, tx txRunner, events eventEmitter) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event emitter required")
	}
	return &service{repo: repository, tx: tx, events: events}, nil
}

// Promote copies a candidate into a new confirmed item. The candidate is left
// as it was; promoting it twice yields two items.
func (s *service) Promote(ctx context.Context, candidateID uuid.UUID) (*models.ConfirmedItem, error) {
	var item *models.ConfirmedItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		candidate, err := txRepo.candidates.FindByID(ctx, candidateID)
		if err != nil {
			return err
		}
		if err := ensureOpen(ctx, txRepo, candidate.ProjectID); err != nil {
			return err
		}

		item = &models.ConfirmedItem{
			Name:       candidate.Name,
			Image:      candidate.Image,
			CategoryID: candidate.CategoryID,
			ProjectID:  candidate.ProjectID,
		}
		if err := txRepo.items.Create(ctx, item); err != nil {
			return err
		}

		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventCandidatePromoted,
			AggregateType: enums.AggregateConfirmedItem,
			AggregateID:   item.ID,
			Source:        eventSource,
			Data: outbox.CandidatePromotedEvent{
				CandidateID: candidate.ID,
				ItemID:      item.ID,
				ProjectID:   item.ProjectID,
			},
		})
	})
	if err != nil {
		return nil, wrapTx(err, "items.promote")
	}
	return item, nil
}

// CreateConfirmedItem stores an item and makes sure a matching candidate
// exists, so the intake list stays a superset of confirmed items.
func (s *service) CreateConfirmedItem(ctx context.Context, input CreateItemInput) (*models.ConfirmedItem, error) {
	name := strings.TrimSpace(input.Name)
	image := strings.TrimSpace(input.Image)
	if name == "" || image == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and image are required").WithStep("items.create")
	}

	var item *models.ConfirmedItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		if err := ensureOpen(ctx, txRepo, input.ProjectID); err != nil {
			return err
		}
		if _, err := txRepo.categories.FindByID(ctx, input.CategoryID); err != nil {
			return err
		}

		item = &models.ConfirmedItem{
			Name:       name,
			Image:      image,
			CategoryID: input.CategoryID,
			ProjectID:  input.ProjectID,
		}
		if err := txRepo.items.Create(ctx, item); err != nil {
			return err
		}

		candidate := &models.CatalogueCandidate{
			Name:       name,
			Image:      image,
			CategoryID: input.CategoryID,
			ProjectID:  input.ProjectID,
		}
		inserted, err := txRepo.candidates.CreateIfAbsent(ctx, candidate,
			"project_id", "category_id", "name", "image")
		if err != nil {
			return err
		}

		event := outbox.ItemCreatedEvent{
			ItemID:     item.ID,
			ProjectID:  item.ProjectID,
			CategoryID: item.CategoryID,
			Name:       item.Name,
		}
		if inserted {
			event.CandidateID = &candidate.ID
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventItemCreated,
			AggregateType: enums.AggregateConfirmedItem,
			AggregateID:   item.ID,
			Source:        eventSource,
			Data:          event,
		})
	})
	if err != nil {
		return nil, wrapTx(err, "items.create")
	}
	return item, nil
}

// List returns items oldest first, the order the catalogue is read in.
func (s *service) List(ctx context.Context, filter Filter) ([]models.ConfirmedItem, error) {
	eq := map[string]any{}
	if filter.ProjectID != nil {
		eq["project_id"] = *filter.ProjectID
	}
	if filter.CategoryID != nil {
		eq["category_id"] = *filter.CategoryID
	}
	return s.repo.items.Find(ctx, repo.Filter{Eq: eq, Order: repo.OldestFirst})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.ConfirmedItem, error) {
	return s.repo.items.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*models.ConfirmedItem, error) {
	patch := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty").WithStep("items.update")
		}
		patch["name"] = name
	}
	if input.Image != nil {
		image := strings.TrimSpace(*input.Image)
		if image == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "image cannot be empty").WithStep("items.update")
		}
		patch["image"] = image
	}
	if input.CategoryID != nil {
		if _, err := s.repo.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		patch["category_id"] = *input.CategoryID
	}
	if len(patch) == 0 {
		return s.repo.items.FindByID(ctx, id)
	}
	return s.repo.items.Update(ctx, id, patch)
}

func ensureOpen(ctx context.Context, r *Repository, projectID uuid.UUID) error {
	project, err := r.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.Status == enums.ProjectStatusClosed {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "project is closed").
			WithDetails(map[string]any{"projectId": projectID.String()})
	}
	return nil
}

func wrapTx(err error, step string) error {
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "transaction failed").WithStep(step)
}
