// Package app assembles the catalogue services over one database client.
package app

import (
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/furniture-catalogue-backend/internal/candidates"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/cascade"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/catalogue"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/categories"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/items"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/lots"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/projects"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/metrics"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/outbox"
)

// Services bundles the domain services served by the API and the CLI.
type Services struct {
	Projects   projects.Service
	Categories categories.Service
	Candidates candidates.Service
	Items      items.Service
	Lots       lots.Service
	Cascade    cascade.Service
	Catalogue  catalogue.Service
}

// Build wires every service. reg may be nil, in which case metrics are not
// exported.
func Build(client *db.Client, cfg config.CatalogueConfig, reg prometheus.Registerer, logg *logger.Logger) (Services, error) {
	if client == nil {
		return Services{}, errors.New("database client is required")
	}
	if logg == nil {
		return Services{}, errors.New("logger is required")
	}

	conn := client.DB()
	events := outbox.NewService(outbox.NewRepository(conn), logg)

	var catalogueMetrics *metrics.CatalogueMetrics
	if reg != nil {
		catalogueMetrics = metrics.NewCatalogueMetrics(reg)
	}

	var (
		out Services
		err error
	)
	if out.Projects, err = projects.NewService(projects.NewRepository(conn)); err != nil {
		return Services{}, err
	}
	if out.Categories, err = categories.NewService(categories.NewRepository(conn)); err != nil {
		return Services{}, err
	}
	if out.Candidates, err = candidates.NewService(candidates.NewRepository(conn)); err != nil {
		return Services{}, err
	}
	if out.Items, err = items.NewService(items.NewRepository(conn), client, events); err != nil {
		return Services{}, err
	}
	if out.Lots, err = lots.NewService(lots.NewRepository(conn), client, events, catalogueMetrics, normalizePolicy(cfg.LotPolicy)); err != nil {
		return Services{}, err
	}
	if out.Cascade, err = cascade.NewService(cascade.NewRepository(conn), client, events, catalogueMetrics, logg, normalizePolicy(cfg.CascadePolicy)); err != nil {
		return Services{}, err
	}
	if out.Catalogue, err = catalogue.NewService(catalogue.NewRepository(conn), catalogueMetrics); err != nil {
		return Services{}, err
	}
	return out, nil
}

func normalizePolicy(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
