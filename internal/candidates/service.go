package candidates

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

// Service files and lists catalogue candidates.
type Service interface {
	Create(ctx context.Context, input CreateCandidateInput) (*models.CatalogueCandidate, error)
	List(ctx context.Context, filter Filter) ([]models.CatalogueCandidate, error)
	Get(ctx context.Context, id uuid.UUID) (*models.CatalogueCandidate, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCandidateInput) (*models.CatalogueCandidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

func NewService(repository *Repository) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("candidate repository required")
	}
	return &service{repo: repository}, nil
}

// Create stores a candidate. A second candidate with the same project,
// category, name and image is refused with CONFLICT.
func (s *service) Create(ctx context.Context, input CreateCandidateInput) (*models.CatalogueCandidate, error) {
	name := strings.TrimSpace(input.Name)
	image := strings.TrimSpace(input.Image)
	if name == "" || image == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and image are required").WithStep("candidates.create")
	}
	if _, err := s.repo.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	if _, err := s.repo.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	candidate := &models.CatalogueCandidate{
		Name:       name,
		Image:      image,
		CategoryID: input.CategoryID,
		ProjectID:  input.ProjectID,
	}
	if err := s.repo.candidates.Create(ctx, candidate); err != nil {
		return nil, duplicate(err, "candidates.create")
	}
	return candidate, nil
}

// List returns candidates newest first, optionally narrowed by project and
// category.
func (s *service) List(ctx context.Context, filter Filter) ([]models.CatalogueCandidate, error) {
	eq := map[string]any{}
	if filter.ProjectID != nil {
		eq["project_id"] = *filter.ProjectID
	}
	if filter.CategoryID != nil {
		eq["category_id"] = *filter.CategoryID
	}
	return s.repo.candidates.Find(ctx, repo.Filter{Eq: eq})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.CatalogueCandidate, error) {
	return s.repo.candidates.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCandidateInput) (*models.CatalogueCandidate, error) {
	patch := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty").WithStep("candidates.update")
		}
		patch["name"] = name
	}
	if input.Image != nil {
		image := strings.TrimSpace(*input.Image)
		if image == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "image cannot be empty").WithStep("candidates.update")
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
		return s.repo.candidates.FindByID(ctx, id)
	}
	updated, err := s.repo.candidates.Update(ctx, id, patch)
	if err != nil {
		return nil, duplicate(err, "candidates.update")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.candidates.Delete(ctx, id)
}

func duplicate(err error, step string) error {
	if pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err,
			"catalogue entry already exists for this project, category, name and image").WithStep(step)
	}
	return err
}
