package cascade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/metrics"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/outbox"
)

const eventSource = "cascade"

// Metric path labels.
const (
	pathItemDelete    = "item_delete"
	pathProjectClose  = "project_close"
	pathProjectDelete = "project_delete"
)

// Service removes records together with their dependents. Each operation
// runs in one transaction.
type Service interface {
	DeleteConfirmedItem(ctx context.Context, itemID uuid.UUID) error
	CloseProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	repo    *Repository
	tx      txRunner
	events  eventEmitter
	metrics *metrics.CatalogueMetrics
	logg    *logger.Logger
	policy  string
}

// NewService builds the cascade service. policy is config.CascadePolicyUnified
// or config.CascadePolicyLegacy; metrics and logg may be nil.
func NewService(repository *Repository, tx txRunner, events eventEmitter, m *metrics.CatalogueMetrics, logg *logger.Logger, policy string) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("cascade repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event emitter required")
	}
	switch policy {
	case config.CascadePolicyUnified, config.CascadePolicyLegacy:
	default:
		return nil, fmt.Errorf("unsupported cascade policy %q", policy)
	}
	return &service{repo: repository, tx: tx, events: events, metrics: m, logg: logg, policy: policy}, nil
}

type purgeResult struct {
	items   int64
	details int64
}

// purgeItems deletes the items matching filter and, when withDetails is set,
// their details first.
func purgeItems(ctx context.Context, r *Repository, filter repo.Filter, withDetails bool) (purgeResult, error) {
	var res purgeResult
	ids, err := r.itemIDs(ctx, filter)
	if err != nil || len(ids) == 0 {
		return res, err
	}
	if withDetails {
		res.details, err = r.details.DeleteWhere(ctx, repo.Filter{In: map[string]any{"item_id": ids}})
		if err != nil {
			return res, err
		}
	}
	res.items, err = r.items.DeleteWhere(ctx, repo.Filter{In: map[string]any{"id": ids}})
	return res, err
}

// DeleteConfirmedItem removes the item's detail and then the item. A missing
// detail is fine; a missing item is NOT_FOUND, reported after any orphaned
// detail has been cleared.
func (s *service) DeleteConfirmedItem(ctx context.Context, itemID uuid.UUID) error {
	ctx = s.withOperation(ctx, "cascade.delete_item")
	var (
		res     purgeResult
		missing bool
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.items.FindByID(ctx, itemID)
		if err != nil && !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return err
		}
		if item == nil {
			missing = true
			res.details, err = txRepo.details.DeleteWhere(ctx, repo.Filter{Eq: map[string]any{"item_id": itemID}})
			return err
		}

		res, err = purgeItems(ctx, txRepo, repo.Filter{Eq: map[string]any{"id": itemID}}, true)
		if err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventItemDeleted,
			AggregateType: enums.AggregateConfirmedItem,
			AggregateID:   itemID,
			Source:        eventSource,
			Data: outbox.ItemDeletedEvent{
				ItemID:         itemID,
				ProjectID:      item.ProjectID,
				DetailsRemoved: res.details,
			},
		})
	})
	if err != nil {
		return wrapTx(err, "cascade.delete_item")
	}
	s.record(pathItemDelete, res)
	if missing {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item not found").WithStep("cascade.delete_item")
	}
	return nil
}

// CloseProject marks the project closed and removes its items. Details go
// with them unless the legacy policy is configured.
func (s *service) CloseProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	ctx = s.withOperation(ctx, "cascade.close_project")
	var (
		project *models.Project
		res     purgeResult
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		var err error
		project, err = txRepo.projects.Update(ctx, projectID, map[string]any{"status": enums.ProjectStatusClosed})
		if err != nil {
			return err
		}
		res, err = purgeItems(ctx, txRepo, repo.Filter{Eq: map[string]any{"project_id": projectID}}, s.unified())
		if err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventProjectClosed,
			AggregateType: enums.AggregateProject,
			AggregateID:   projectID,
			Source:        eventSource,
			Data: outbox.ProjectClosedEvent{
				ProjectID:      projectID,
				ItemsRemoved:   res.items,
				DetailsRemoved: res.details,
			},
		})
	})
	if err != nil {
		return nil, wrapTx(err, "cascade.close_project")
	}
	s.record(pathProjectClose, res)
	s.logCascade(ctx, projectID, "project closed", res, 0)
	return project, nil
}

// DeleteProject removes the project, its scoped categories, its items and
// its lot counter. Under the unified policy every detail recorded for the
// project is removed as well.
func (s *service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	ctx = s.withOperation(ctx, "cascade.delete_project")
	var (
		res        purgeResult
		categories int64
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		byProject := repo.Filter{Eq: map[string]any{"project_id": projectID}}

		if err := txRepo.projects.Delete(ctx, projectID); err != nil {
			return err
		}
		var err error
		if categories, err = txRepo.categories.DeleteWhere(ctx, byProject); err != nil {
			return err
		}
		if res, err = purgeItems(ctx, txRepo, byProject, s.unified()); err != nil {
			return err
		}
		if s.unified() {
			orphans, err := txRepo.details.DeleteWhere(ctx, byProject)
			if err != nil {
				return err
			}
			res.details += orphans
		}
		if _, err := txRepo.sequences.DeleteWhere(ctx, byProject); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventProjectDeleted,
			AggregateType: enums.AggregateProject,
			AggregateID:   projectID,
			Source:        eventSource,
			Data: outbox.ProjectDeletedEvent{
				ProjectID:         projectID,
				CategoriesRemoved: categories,
				ItemsRemoved:      res.items,
				DetailsRemoved:    res.details,
			},
		})
	})
	if err != nil {
		return wrapTx(err, "cascade.delete_project")
	}
	s.record(pathProjectDelete, res)
	s.metrics.AddCascadeDeletions(pathProjectDelete, "category", categories)
	s.logCascade(ctx, projectID, "project deleted", res, categories)
	return nil
}

func (s *service) withOperation(ctx context.Context, op string) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithOperation(ctx, op)
}

func (s *service) unified() bool {
	return s.policy == config.CascadePolicyUnified
}

func (s *service) record(path string, res purgeResult) {
	s.metrics.AddCascadeDeletions(path, "item", res.items)
	s.metrics.AddCascadeDeletions(path, "item_detail", res.details)
}

func (s *service) logCascade(ctx context.Context, projectID uuid.UUID, msg string, res purgeResult, categories int64) {
	if s.logg == nil {
		return
	}
	logCtx := s.logg.WithFields(ctx, map[string]any{
		"project_id":         projectID.String(),
		"cascade_policy":     s.policy,
		"items_removed":      res.items,
		"details_removed":    res.details,
		"categories_removed": categories,
	})
	s.logg.Info(logCtx, msg)
}

func wrapTx(err error, step string) error {
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cascade transaction failed").WithStep(step)
}
