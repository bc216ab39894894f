package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/repo"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
)

// Service manages project records. Closing and deleting projects cascade and
// live in the cascade package.
type Service interface {
	Create(ctx context.Context, input CreateProjectInput) (*models.Project, error)
	List(ctx context.Context) ([]SummaryDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Rename(ctx context.Context, id uuid.UUID, input RenameProjectInput) (*models.Project, error)
	Reopen(ctx context.Context, id uuid.UUID) (*models.Project, error)
}

type service struct {
	repo *Repository
}

func NewService(repository *Repository) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("project repository required")
	}
	return &service{repo: repository}, nil
}

func (s *service) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "project name is required").WithStep("projects.create")
	}
	project := &models.Project{Name: name, Status: enums.ProjectStatusOpen}
	if err := s.repo.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// List returns projects newest first. categoryCount covers global categories
// plus those scoped to the project.
func (s *service) List(ctx context.Context) ([]SummaryDTO, error) {
	rows, err := s.repo.projects.Find(ctx, repo.Filter{})
	if err != nil {
		return nil, err
	}
	global, err := s.repo.GlobalCategoryCount(ctx)
	if err != nil {
		return nil, err
	}
	scoped, err := s.repo.ScopedCategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ItemCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SummaryDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, SummaryDTO{
			ProjectDTO:    ToDTO(p),
			CategoryCount: global + scoped[p.ID],
			ItemCount:     items[p.ID],
		})
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.repo.projects.FindByID(ctx, id)
}

func (s *service) Rename(ctx context.Context, id uuid.UUID, input RenameProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "project name is required").WithStep("projects.rename")
	}
	return s.repo.projects.Update(ctx, id, map[string]any{"name": name})
}

// Reopen moves a closed project back to open. Items removed on close are not
// restored.
func (s *service) Reopen(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.repo.projects.Update(ctx, id, map[string]any{"status": enums.ProjectStatusOpen})
}
