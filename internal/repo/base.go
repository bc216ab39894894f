package repo

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	dbpkg "github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

// NewestFirst is the default listing order.
var NewestFirst = []string{"created_at DESC", "id DESC"}

// OldestFirst lists records in creation order.
var OldestFirst = []string{"created_at ASC", "id ASC"}

// Filter narrows a query by column equality and set membership. Keys are
// column names chosen by callers, never raw user input. A nil Eq value
// matches NULL.
type Filter struct {
	Eq    map[string]any
	In    map[string]any
	Order []string
}

// Empty reports whether the filter matches every row.
func (f Filter) Empty() bool {
	return len(f.Eq) == 0 && len(f.In) == 0
}

// Base binds catalogue repositories to a connection or transaction.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to ctx.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Where applies filter's predicates in column order so generated SQL is
// stable across calls.
func (b Base) Where(ctx context.Context, filter Filter) *gorm.DB {
	q := b.DB(ctx)
	for _, col := range sortedKeys(filter.Eq) {
		v := filter.Eq[col]
		if v == nil {
			q = q.Where(col + " IS NULL")
			continue
		}
		q = q.Where(col+" = ?", v)
	}
	for _, col := range sortedKeys(filter.In) {
		q = q.Where(col+" IN ?", filter.In[col])
	}
	return q
}

// Ordered is Where plus filter.Order, falling back to NewestFirst.
func (b Base) Ordered(ctx context.Context, filter Filter) *gorm.DB {
	order := filter.Order
	if len(order) == 0 {
		order = NewestFirst
	}
	q := b.Where(ctx, filter)
	for _, o := range order {
		q = q.Order(o)
	}
	return q
}

// NotFound is the coded error for a missing entity at entity.op.
func NotFound(entity, op string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, entity+" not found").WithStep(entity + "." + op)
}

// Translate maps a driver error onto NOT_FOUND, CONFLICT or DEPENDENCY_ERROR
// with the failing operation as the step.
func Translate(entity, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case dbpkg.IsNotFound(err):
		return NotFound(entity, op)
	case dbpkg.IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, entity+" already exists").WithStep(entity + "." + op)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s %s failed", entity, op)).WithStep(entity + "." + op)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
