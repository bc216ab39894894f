package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/app"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/catalogue"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/categories"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/items"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/lots"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/projects"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/dbtest"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

type fixture struct {
	sess      *session
	opens     int
	projectID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := dbtest.New(t)
	cfg := &config.Config{Catalogue: config.CatalogueConfig{
		LotPolicy:         config.LotPolicyReassign,
		CascadePolicy:     config.CascadePolicyUnified,
		DefaultCategories: []string{"Castor Chairs", "Desks/Tables", "Soft Seating"},
	}}
	logg := logger.New(logger.Options{ServiceName: "cli-test", Output: io.Discard})
	services, err := app.Build(client, cfg.Catalogue, nil, logg)
	require.NoError(t, err)

	return &fixture{sess: &session{
		cfg:      cfg,
		logg:     logg,
		services: services,
		close:    func() error { return nil },
	}}
}

func (f *fixture) open(context.Context) (*session, error) {
	f.opens++
	return f.sess, nil
}

func (f *fixture) seedProject(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	svc := f.sess.services

	project, err := svc.Projects.Create(ctx, projects.CreateProjectInput{Name: "Proj"})
	require.NoError(t, err)
	category, err := svc.Categories.Create(ctx, categories.CreateCategoryInput{CategoryName: "Cat"})
	require.NoError(t, err)
	chair, err := svc.Items.CreateConfirmedItem(ctx, items.CreateItemInput{Name: "Chair", Image: "chair.jpg", CategoryID: category.ID, ProjectID: project.ID})
	require.NoError(t, err)
	_, err = svc.Items.CreateConfirmedItem(ctx, items.CreateItemInput{Name: "Stool", Image: "stool.jpg", CategoryID: category.ID, ProjectID: project.ID})
	require.NoError(t, err)
	_, err = svc.Lots.UpsertDetail(ctx, chair.ID, lots.UpsertDetailInput{
		ProjectID: &project.ID,
		Condition: "Good",
		Location:  lots.LocationInput{Area: "North", Floor: "2"},
	})
	require.NoError(t, err)
	f.projectID = project.ID.String()
}

func run(t *testing.T, f *fixture, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(f.open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMergeJSON(t *testing.T) {
	f := newFixture(t)
	f.seedProject(t)

	out, err := run(t, f, "merge", "--project", f.projectID, "--format", "json")
	require.NoError(t, err)

	var rows []catalogue.DisplayRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Chair", rows[0].Name)
	assert.Equal(t, "LOT-1", rows[0].LotNumber)
	assert.Equal(t, "North", rows[0].Location.Area)
	assert.Equal(t, "Stool", rows[1].Name)
	assert.Equal(t, catalogue.UnassignedLot, rows[1].LotNumber)
	assert.Equal(t, catalogue.UnknownCondition, rows[1].Condition)
}

func TestMergeTableAndCSV(t *testing.T) {
	f := newFixture(t)
	f.seedProject(t)

	out, err := run(t, f, "merge", "--project", f.projectID)
	require.NoError(t, err)
	assert.Contains(t, out, "LOT-1")
	assert.Contains(t, out, "Not assigned")
	assert.Contains(t, strings.ToLower(out), "2 items")

	out, err = run(t, f, "merge", "--project", f.projectID, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.EqualFold("Lot,Name,Category,Condition,Area,Zone,Floor", lines[0]), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "LOT-1,Chair,Cat,Good,North,,2"), lines[1])
}

func TestMergeValidatesFlagsBeforeOpening(t *testing.T) {
	f := newFixture(t)

	_, err := run(t, f, "merge", "--project", "nope")
	require.Error(t, err)

	_, err = run(t, f, "merge", "--project", "00000000-0000-0000-0000-000000000001", "--format", "yaml")
	require.Error(t, err)

	_, err = run(t, f, "merge")
	require.Error(t, err)

	assert.Zero(t, f.opens)
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "seed-categories")
	require.NoError(t, err)
	assert.Equal(t, "seeded 3 of 3 categories\n", out)

	out, err = run(t, f, "seed-categories")
	require.NoError(t, err)
	assert.Equal(t, "seeded 0 of 3 categories\n", out)

	out, err = run(t, f, "seed-categories", "--name", "Lighting")
	require.NoError(t, err)
	assert.Equal(t, "seeded 1 of 1 categories\n", out)
}
