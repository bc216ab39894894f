package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

// Service manages the category vocabulary items are filed under.
type Service interface {
	Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]models.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SeedDefaults(ctx context.Context, names []string) (int, error)
}

type service struct {
	repo *Repository
}

func NewService(repository *Repository) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repository}, nil
}

func (s *service) Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required").WithStep("categories.create")
	}
	if input.ProjectID != nil {
		if _, err := s.repo.projects.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, err
		}
	}
	category := &models.Category{CategoryName: name, ProjectID: input.ProjectID}
	if err := s.repo.categories.Create(ctx, category); err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, fmt.Sprintf("category %q already exists", name)).
				WithStep("categories.create")
		}
		return nil, err
	}
	return category, nil
}

// List returns categories alphabetically. With a project id the result holds
// the global categories plus those scoped to that project.
func (s *service) List(ctx context.Context, projectID *uuid.UUID) ([]models.Category, error) {
	order := []string{"category_name ASC"}
	if projectID == nil {
		return s.repo.categories.Find(ctx, repo.Filter{Order: order})
	}
	var rows []models.Category
	err := s.repo.categories.DB(ctx).
		Where("project_id IS NULL OR project_id = ?", *projectID).
		Order(order[0]).
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories failed").WithStep("category.find")
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.repo.categories.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required").WithStep("categories.update")
	}
	return s.repo.categories.Update(ctx, id, map[string]any{"category_name": name})
}

// Delete removes the category only. Items filed under it keep the dangling id
// and render with an unknown category name.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.categories.Delete(ctx, id)
}

// SeedDefaults creates any missing global categories from names and returns
// how many were inserted. Every name is attempted; failures are combined.
func (s *service) SeedDefaults(ctx context.Context, names []string) (int, error) {
	var (
		inserted int
		errs     error
	)
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		ok, err := s.repo.categories.CreateIfAbsent(ctx, &models.Category{CategoryName: name}, "category_name")
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seed %q: %w", name, err))
			continue
		}
		if ok {
			inserted++
		}
	}
	return inserted, errs
}
