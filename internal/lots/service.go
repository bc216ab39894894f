package lots

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/metrics"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/outbox"
)

const (
	lotPrefix   = "LOT-"
	eventSource = "lots"
)

// Service assigns lot numbers and stores item details.
type Service interface {
	UpsertDetail(ctx context.Context, itemID uuid.UUID, input UpsertDetailInput) (*models.ItemDetail, error)
	GetDetail(ctx context.Context, itemID uuid.UUID) (*models.ItemDetail, error)
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
	policy  string
}

// NewService builds the lot numbering service. policy is config.LotPolicyReassign
// or config.LotPolicyPreserve; metrics may be nil.
func NewService(repository *Repository, tx txRunner, events eventEmitter, m *metrics.CatalogueMetrics, policy string) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("lot repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event emitter required")
	}
	switch policy {
	case config.LotPolicyReassign, config.LotPolicyPreserve:
	default:
		return nil, fmt.Errorf("unsupported lot policy %q", policy)
	}
	return &service{repo: repository, tx: tx, events: events, metrics: m, policy: policy}, nil
}

// FormatLotNumber renders a counter value as a lot number.
func FormatLotNumber(n int64) string {
	return lotPrefix + strconv.FormatInt(n, 10)
}

// UpsertDetail creates or replaces the item's detail. Under the reassign
// policy every call draws a new lot number; under preserve an existing
// detail keeps its number.
func (s *service) UpsertDetail(ctx context.Context, itemID uuid.UUID, input UpsertDetailInput) (*models.ItemDetail, error) {
	if input.ProjectID == nil || *input.ProjectID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "projectId is required").WithStep("lots.upsert")
	}
	condition, err := enums.ParseItemCondition(input.Condition)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "condition must be one of Good, Fair, Poor").
			WithStep("lots.upsert")
	}
	damage := normalizeDamage(condition, input.DamageTypes)
	location := models.Location{
		Area:  strings.TrimSpace(input.Location.Area),
		Zone:  strings.TrimSpace(input.Location.Zone),
		Floor: strings.TrimSpace(input.Location.Floor),
	}

	var (
		saved   *models.ItemDetail
		outcome string
	)
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.items.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.ProjectID != *input.ProjectID {
			return pkgerrors.New(pkgerrors.CodeValidation, "projectId does not match the item's project").
				WithDetails(map[string]any{"itemProjectId": item.ProjectID.String()}).
				WithStep("lots.upsert")
		}

		existing, err := txRepo.FindDetail(ctx, itemID)
		if err != nil {
			return err
		}

		var previous, lotNumber string
		if existing != nil {
			previous = existing.LotNumber
		}
		if existing != nil && s.policy == config.LotPolicyPreserve {
			lotNumber = existing.LotNumber
			outcome = metrics.LotOutcomePreserved
		} else {
			next, err := txRepo.NextValue(ctx, item.ProjectID)
			if err != nil {
				return err
			}
			lotNumber = FormatLotNumber(next)
			outcome = metrics.LotOutcomeReassigned
			if existing == nil {
				outcome = metrics.LotOutcomeCreated
			}
		}

		if existing == nil {
			saved = &models.ItemDetail{
				ItemID:      item.ID,
				ProjectID:   item.ProjectID,
				Condition:   condition,
				DamageTypes: damage,
				LotNumber:   lotNumber,
				Location:    location,
			}
			if err := txRepo.details.Create(ctx, saved); err != nil {
				return err
			}
		} else {
			saved, err = txRepo.details.Update(ctx, existing.ID, map[string]any{
				"condition":      condition,
				"damage_types":   damage,
				"lot_number":     lotNumber,
				"location_area":  location.Area,
				"location_zone":  location.Zone,
				"location_floor": location.Floor,
			})
			if err != nil {
				return err
			}
		}

		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventLotAssigned,
			AggregateType: enums.AggregateConfirmedItem,
			AggregateID:   item.ID,
			Source:        eventSource,
			Data: outbox.LotAssignedEvent{
				ItemID:            item.ID,
				ProjectID:         item.ProjectID,
				LotNumber:         lotNumber,
				PreviousLotNumber: previous,
				Condition:         condition.String(),
			},
		})
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save item detail").WithStep("lots.upsert")
	}

	s.metrics.IncLotAssignment(outcome)
	return saved, nil
}

func (s *service) GetDetail(ctx context.Context, itemID uuid.UUID) (*models.ItemDetail, error) {
	detail, err := s.repo.FindDetail(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item detail not found").WithStep("lots.get_detail")
	}
	return detail, nil
}

// normalizeDamage trims and de-duplicates labels. Good items carry none.
func normalizeDamage(condition enums.ItemCondition, raw []string) pq.StringArray {
	out := pq.StringArray{}
	if !condition.AllowsDamage() {
		return out
	}
	seen := make(map[string]struct{}, len(raw))
	for _, label := range raw {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
