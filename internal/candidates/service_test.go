package candidates

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/dbtest"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

type fixture struct {
	svc      Service
	repo     *Repository
	project  *models.Project
	category *models.Category
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	repository := NewRepository(dbtest.New(t).DB())
	svc, err := NewService(repository)
	require.NoError(t, err)

	project := &models.Project{Name: "Proj"}
	require.NoError(t, repository.projects.Create(ctx, project))
	category := &models.Category{CategoryName: "Cat"}
	require.NoError(t, repository.categories.Create(ctx, category))

	return fixture{svc: svc, repo: repository, project: project, category: category}
}

func (f fixture) input(name string) CreateCandidateInput {
	return CreateCandidateInput{Name: name, Image: "img://" + name, CategoryID: f.category.ID, ProjectID: f.project.ID}
}

func TestCreateCandidate(t *testing.T) {
	f := newFixture(t)

	candidate, err := f.svc.Create(context.Background(), f.input("Chair"))
	require.NoError(t, err)
	assert.Equal(t, "Chair", candidate.Name)
	assert.Equal(t, f.project.ID, candidate.ProjectID)
	assert.Equal(t, f.category.ID, candidate.CategoryID)
}

func TestCreateDuplicateCandidateConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.input("Chair"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.input("Chair"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	other := f.input("Chair")
	other.Image = "img://other"
	_, err = f.svc.Create(ctx, other)
	require.NoError(t, err)
}

func TestCreateCandidateUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	input := f.input("Chair")
	input.ProjectID = uuid.New()
	_, err := f.svc.Create(ctx, input)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	input = f.input("Chair")
	input.CategoryID = uuid.New()
	_, err = f.svc.Create(ctx, input)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	input = f.input("Chair")
	input.Image = " "
	_, err = f.svc.Create(ctx, input)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestListFiltersByProjectAndCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherCategory := &models.Category{CategoryName: "Other"}
	require.NoError(t, f.repo.categories.Create(ctx, otherCategory))

	_, err := f.svc.Create(ctx, f.input("Chair"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.input("Desk"))
	require.NoError(t, err)
	sofa := f.input("Sofa")
	sofa.CategoryID = otherCategory.ID
	_, err = f.svc.Create(ctx, sofa)
	require.NoError(t, err)

	all, err := f.svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProject, err := f.svc.List(ctx, Filter{ProjectID: &f.project.ID})
	require.NoError(t, err)
	assert.Len(t, byProject, 3)

	byCategory, err := f.svc.List(ctx, Filter{ProjectID: &f.project.ID, CategoryID: &otherCategory.ID})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Sofa", byCategory[0].Name)

	missing := uuid.New()
	none, err := f.svc.List(ctx, Filter{ProjectID: &missing})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateAndDeleteCandidate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	chair, err := f.svc.Create(ctx, f.input("Chair"))
	require.NoError(t, err)
	desk, err := f.svc.Create(ctx, f.input("Desk"))
	require.NoError(t, err)

	name := "Armchair"
	updated, err := f.svc.Update(ctx, chair.ID, UpdateCandidateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Armchair", updated.Name)

	clash := "Desk"
	image := desk.Image
	_, err = f.svc.Update(ctx, chair.ID, UpdateCandidateInput{Name: &clash, Image: &image})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	require.NoError(t, f.svc.Delete(ctx, chair.ID))
	_, err = f.svc.Get(ctx, chair.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
