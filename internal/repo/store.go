package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

// Store is the entity store for one model type. It maps driver failures onto
// coded errors and records the failing operation as the error step.
type Store[T any] struct {
	Base
	entity string
}

// NewStore returns a store for T. entity names the record kind in error
// messages and steps ("item", "item_detail", ...).
func NewStore[T any](db *gorm.DB, entity string) *Store[T] {
	return &Store[T]{Base: NewBase(db), entity: entity}
}

// WithTx returns a copy of the store bound to tx.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	return &Store[T]{Base: NewBase(tx), entity: s.entity}
}

func (s *Store[T]) Create(ctx context.Context, record *T) error {
	if err := s.DB(ctx).Create(record).Error; err != nil {
		return s.translate("create", err)
	}
	return nil
}

// CreateIfAbsent inserts record unless a row with the same conflict columns
// already exists. It reports whether a row was inserted.
func (s *Store[T]) CreateIfAbsent(ctx context.Context, record *T, conflictColumns ...string) (bool, error) {
	columns := make([]clause.Column, 0, len(conflictColumns))
	for _, name := range conflictColumns {
		columns = append(columns, clause.Column{Name: name})
	}
	res := s.DB(ctx).Clauses(clause.OnConflict{Columns: columns, DoNothing: true}).Create(record)
	if res.Error != nil {
		return false, s.translate("create_if_absent", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	if err := s.DB(ctx).Where("id = ?", id).Take(&record).Error; err != nil {
		return nil, s.translate("find_by_id", err)
	}
	return &record, nil
}

// FindOne returns the single record matching filter or NOT_FOUND.
func (s *Store[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var record T
	if err := s.Where(ctx, filter).Take(&record).Error; err != nil {
		return nil, s.translate("find_one", err)
	}
	return &record, nil
}

// Find lists matching records, newest first unless filter.Order is set.
func (s *Store[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	var records []T
	if err := s.Ordered(ctx, filter).Find(&records).Error; err != nil {
		return nil, s.translate("find", err)
	}
	return records, nil
}

func (s *Store[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	var count int64
	if err := s.Where(ctx, filter).Model(new(T)).Count(&count).Error; err != nil {
		return 0, s.translate("count", err)
	}
	return count, nil
}

// Update merges patch into the record, refreshes last_updated and returns the
// stored result.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*T, error) {
	values := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		values[k] = v
	}
	values["last_updated"] = time.Now().UTC()

	res := s.DB(ctx).Model(new(T)).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, s.translate("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.notFound("update")
	}
	return s.FindByID(ctx, id)
}

func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return s.translate("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.notFound("delete")
	}
	return nil
}

// DeleteWhere removes every record matching filter; zero matches is not an
// error. An empty filter is refused.
func (s *Store[T]) DeleteWhere(ctx context.Context, filter Filter) (int64, error) {
	if filter.Empty() {
		return 0, pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("refusing unfiltered %s delete", s.entity)).
			WithStep(s.step("delete_where"))
	}
	res := s.Where(ctx, filter).Delete(new(T))
	if res.Error != nil {
		return 0, s.translate("delete_where", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store[T]) step(op string) string {
	return s.entity + "." + op
}

func (s *Store[T]) notFound(op string) error {
	return NotFound(s.entity, op)
}

func (s *Store[T]) translate(op string, err error) error {
	return Translate(s.entity, op, err)
}
