package catalogue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/dbtest"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/metrics"
)

type fixture struct {
	svc      Service
	repo     *Repository
	registry *prometheus.Registry
	project  uuid.UUID
	category *models.Category
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	client := dbtest.New(t)
	repository := NewRepository(client.DB())
	registry := prometheus.NewRegistry()
	svc, err := NewService(repository, metrics.NewCatalogueMetrics(registry))
	require.NoError(t, err)

	project := &models.Project{Name: "Proj"}
	require.NoError(t, client.DB().Create(project).Error)
	category := &models.Category{CategoryName: "Cat"}
	require.NoError(t, repository.categories.Create(ctx, category))
	return fixture{svc: svc, repo: repository, registry: registry, project: project.ID, category: category}
}

func (f fixture) item(t *testing.T, name string, categoryID uuid.UUID) *models.ConfirmedItem {
	t.Helper()
	item := &models.ConfirmedItem{Name: name, Image: "img://" + name, CategoryID: categoryID, ProjectID: f.project}
	require.NoError(t, f.repo.items.Create(context.Background(), item))
	time.Sleep(2 * time.Millisecond)
	return item
}

func (f fixture) detail(t *testing.T, itemID uuid.UUID, lot string, condition enums.ItemCondition, loc models.Location) {
	t.Helper()
	require.NoError(t, f.repo.details.Create(context.Background(), &models.ItemDetail{
		ItemID:      itemID,
		ProjectID:   f.project,
		Condition:   condition,
		DamageTypes: pq.StringArray{},
		LotNumber:   lot,
		Location:    loc,
	}))
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
}

func TestMergeSingleItemScenario(t *testing.T) {
	f := newFixture(t)
	chair := f.item(t, "Chair", f.category.ID)
	f.detail(t, chair.ID, "LOT-1", enums.ItemConditionGood, models.Location{})

	rows, err := f.svc.Merge(context.Background(), f.project)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, chair.ID, row.ID)
	assert.Equal(t, "Chair", row.Name)
	require.NotNil(t, row.CategoryName)
	assert.Equal(t, "Cat", *row.CategoryName)
	require.NotNil(t, row.LotNumber)
	assert.Equal(t, "LOT-1", *row.LotNumber)
	require.NotNil(t, row.Condition)
	assert.Equal(t, enums.ItemConditionGood, *row.Condition)
}

func TestMergeMarksAbsentRecords(t *testing.T) {
	f := newFixture(t)
	f.item(t, "Orphan", uuid.New())
	desk := f.item(t, "Desk", f.category.ID)
	f.detail(t, desk.ID, "LOT-1", enums.ItemConditionFair, models.Location{Area: "North", Floor: "2"})

	rows, err := f.svc.Merge(context.Background(), f.project)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Orphan", rows[0].Name)
	assert.Nil(t, rows[0].CategoryName)
	assert.Nil(t, rows[0].LotNumber)
	assert.Nil(t, rows[0].Condition)
	assert.Nil(t, rows[0].Location)

	assert.Equal(t, "Desk", rows[1].Name)
	require.NotNil(t, rows[1].Location)
	assert.Equal(t, "North", rows[1].Location.Area)
}

func TestMergeOrdersByCreationAndIsRepeatable(t *testing.T) {
	f := newFixture(t)
	first := f.item(t, "First", f.category.ID)
	second := f.item(t, "Second", f.category.ID)
	f.detail(t, second.ID, "LOT-1", enums.ItemConditionGood, models.Location{})
	f.detail(t, first.ID, "LOT-2", enums.ItemConditionPoor, models.Location{})

	ctx := context.Background()
	rows, err := f.svc.Merge(ctx, f.project)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, "LOT-2", *rows[0].LotNumber)
	assert.Equal(t, second.ID, rows[1].ID)
	assert.Equal(t, "LOT-1", *rows[1].LotNumber)

	again, err := f.svc.Merge(ctx, f.project)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestMergeEmptyAndUnknownProject(t *testing.T) {
	f := newFixture(t)

	rows, err := f.svc.Merge(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestMergeObservesDuration(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Merge(context.Background(), f.project)
	require.NoError(t, err)

	families, err := f.registry.Gather()
	require.NoError(t, err)
	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "catalogue_merge_duration_seconds" {
			for _, m := range mf.GetMetric() {
				samples += m.GetHistogram().GetSampleCount()
			}
		}
	}
	assert.EqualValues(t, 1, samples)
}
