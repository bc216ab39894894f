package cascade

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/dbtest"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/outbox"
)

type fixture struct {
	svc     Service
	client  *db.Client
	repo    *Repository
	project *models.Project
}

func newFixture(t *testing.T, policy string) fixture {
	t.Helper()
	client := dbtest.New(t)
	repository := NewRepository(client.DB())
	events := outbox.NewService(outbox.NewRepository(client.DB()), nil)
	svc, err := NewService(repository, client, events, nil, nil, policy)
	require.NoError(t, err)

	project := &models.Project{Name: "Proj"}
	require.NoError(t, repository.projects.Create(context.Background(), project))
	return fixture{svc: svc, client: client, repo: repository, project: project}
}

// seedItem stores an item in the fixture project, with a detail when lot is set.
func (f fixture) seedItem(t *testing.T, name, lot string) *models.ConfirmedItem {
	t.Helper()
	ctx := context.Background()
	item := &models.ConfirmedItem{Name: name, Image: "img://" + name, CategoryID: uuid.New(), ProjectID: f.project.ID}
	require.NoError(t, f.repo.items.Create(ctx, item))
	if lot != "" {
		require.NoError(t, f.repo.details.Create(ctx, &models.ItemDetail{
			ItemID:      item.ID,
			ProjectID:   f.project.ID,
			Condition:   enums.ItemConditionGood,
			DamageTypes: pq.StringArray{},
			LotNumber:   lot,
		}))
	}
	return item
}

func (f fixture) count(t *testing.T, model any, filter repo.Filter) int64 {
	t.Helper()
	q := f.client.DB().Model(model)
	for col, v := range filter.Eq {
		q = q.Where(col+" = ?", v)
	}
	var n int64
	require.NoError(t, q.Count(&n).Error)
	return n
}

func byProject(id uuid.UUID) repo.Filter {
	return repo.Filter{Eq: map[string]any{"project_id": id}}
}

func byItem(id uuid.UUID) repo.Filter {
	return repo.Filter{Eq: map[string]any{"item_id": id}}
}

func TestNewServiceRejectsUnknownPolicy(t *testing.T) {
	client := dbtest.New(t)
	events := outbox.NewService(outbox.NewRepository(client.DB()), nil)
	_, err := NewService(NewRepository(client.DB()), client, events, nil, nil, "soft")
	require.Error(t, err)
}

func TestDeleteConfirmedItemRemovesDetailAndItem(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)
	ctx := context.Background()
	chair := f.seedItem(t, "Chair", "LOT-1")
	desk := f.seedItem(t, "Desk", "LOT-2")

	require.NoError(t, f.svc.DeleteConfirmedItem(ctx, chair.ID))

	assert.Zero(t, f.count(t, &models.ItemDetail{}, byItem(chair.ID)))
	assert.Zero(t, f.count(t, &models.ConfirmedItem{}, repo.Filter{Eq: map[string]any{"id": chair.ID}}))
	assert.EqualValues(t, 1, f.count(t, &models.ItemDetail{}, byItem(desk.ID)))

	var events []models.OutboxEvent
	require.NoError(t, f.client.DB().Where("event_type = ?", enums.EventItemDeleted).Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, chair.ID, events[0].AggregateID)
}

func TestDeleteConfirmedItemWithoutDetail(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)
	chair := f.seedItem(t, "Chair", "")

	require.NoError(t, f.svc.DeleteConfirmedItem(context.Background(), chair.ID))
	assert.Zero(t, f.count(t, &models.ConfirmedItem{}, byProject(f.project.ID)))
}

func TestDeleteConfirmedItemMissingClearsOrphanDetail(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)
	ctx := context.Background()
	orphan := uuid.New()
	require.NoError(t, f.repo.details.Create(ctx, &models.ItemDetail{
		ItemID: orphan, ProjectID: f.project.ID, Condition: enums.ItemConditionFair,
		DamageTypes: pq.StringArray{}, LotNumber: "LOT-9",
	}))

	err := f.svc.DeleteConfirmedItem(ctx, orphan)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Zero(t, f.count(t, &models.ItemDetail{}, byItem(orphan)))
}

func TestCloseProjectUnified(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)
	ctx := context.Background()
	f.seedItem(t, "Chair", "LOT-1")
	f.seedItem(t, "Desk", "")

	project, err := f.svc.CloseProject(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.ProjectStatusClosed, project.Status)
	assert.False(t, project.LastUpdated.Before(f.project.LastUpdated))

	assert.Zero(t, f.count(t, &models.ConfirmedItem{}, byProject(f.project.ID)))
	assert.Zero(t, f.count(t, &models.ItemDetail{}, byProject(f.project.ID)))
}

func TestCloseProjectLegacyLeavesDetails(t *testing.T) {
	f := newFixture(t, config.CascadePolicyLegacy)
	ctx := context.Background()
	f.seedItem(t, "Chair", "LOT-1")

	_, err := f.svc.CloseProject(ctx, f.project.ID)
	require.NoError(t, err)

	assert.Zero(t, f.count(t, &models.ConfirmedItem{}, byProject(f.project.ID)))
	assert.EqualValues(t, 1, f.count(t, &models.ItemDetail{}, byProject(f.project.ID)))
}

func TestCloseProjectMissing(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)

	_, err := f.svc.CloseProject(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteProjectUnified(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)
	ctx := context.Background()
	f.seedItem(t, "Chair", "LOT-1")
	f.seedItem(t, "Desk", "LOT-2")

	scoped := &models.Category{CategoryName: "Proj Lockers", ProjectID: &f.project.ID}
	global := &models.Category{CategoryName: "Soft Seating"}
	require.NoError(t, f.repo.categories.Create(ctx, scoped))
	require.NoError(t, f.repo.categories.Create(ctx, global))
	require.NoError(t, f.client.DB().Create(&models.LotSequence{ProjectID: f.project.ID, LastValue: 2}).Error)

	other := &models.Project{Name: "Other"}
	require.NoError(t, f.repo.projects.Create(ctx, other))
	otherItem := &models.ConfirmedItem{Name: "Sofa", Image: "img://sofa", CategoryID: global.ID, ProjectID: other.ID}
	require.NoError(t, f.repo.items.Create(ctx, otherItem))

	require.NoError(t, f.svc.DeleteProject(ctx, f.project.ID))

	_, err := f.repo.projects.FindByID(ctx, f.project.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Zero(t, f.count(t, &models.Category{}, byProject(f.project.ID)))
	assert.Zero(t, f.count(t, &models.ConfirmedItem{}, byProject(f.project.ID)))
	assert.Zero(t, f.count(t, &models.ItemDetail{}, byProject(f.project.ID)))
	assert.Zero(t, f.count(t, &models.LotSequence{}, byProject(f.project.ID)))

	_, err = f.repo.categories.FindByID(ctx, global.ID)
	require.NoError(t, err)
	_, err = f.repo.items.FindByID(ctx, otherItem.ID)
	require.NoError(t, err)
}

func TestDeleteProjectLegacyLeavesDetails(t *testing.T) {
	f := newFixture(t, config.CascadePolicyLegacy)
	ctx := context.Background()
	f.seedItem(t, "Chair", "LOT-1")

	require.NoError(t, f.svc.DeleteProject(ctx, f.project.ID))
	assert.Zero(t, f.count(t, &models.ConfirmedItem{}, byProject(f.project.ID)))
	assert.EqualValues(t, 1, f.count(t, &models.ItemDetail{}, byProject(f.project.ID)))
}

func TestDeleteProjectMissing(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)

	err := f.svc.DeleteProject(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestCascadeRollsBackWhenEmitFails(t *testing.T) {
	f := newFixture(t, config.CascadePolicyUnified)
	ctx := context.Background()
	chair := f.seedItem(t, "Chair", "LOT-1")

	svc, err := NewService(f.repo, f.client, failingEmitter{}, nil, nil, config.CascadePolicyUnified)
	require.NoError(t, err)

	err = svc.DeleteProject(ctx, f.project.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	_, err = f.repo.projects.FindByID(ctx, f.project.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.count(t, &models.ItemDetail{}, byItem(chair.ID)))
}

type failingEmitter struct{}

func (failingEmitter) Emit(context.Context, *gorm.DB, outbox.DomainEvent) error {
	return assert.AnError
}

func TestCloseProjectLogsOperation(t *testing.T) {
	client := dbtest.New(t)
	repository := NewRepository(client.DB())
	events := outbox.NewService(outbox.NewRepository(client.DB()), nil)
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "cascade-test", Output: &buf})
	svc, err := NewService(repository, client, events, nil, logg, config.CascadePolicyUnified)
	require.NoError(t, err)

	ctx := context.Background()
	project := &models.Project{Name: "Logged"}
	require.NoError(t, repository.projects.Create(ctx, project))

	_, err = svc.CloseProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"op":"cascade.close_project"`)
	assert.Contains(t, buf.String(), `"project_id":"`+project.ID.String()+`"`)
}
