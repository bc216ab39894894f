package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/furniture-catalogue-backend/api/controllers"
	"github.com/angelmondragon/furniture-catalogue-backend/api/middleware"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/app"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	svc app.Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.CORS(cfg.App.AllowedOrigins()),
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	// redis is optional; a nil store turns the idempotency middleware into a pass-through.
	var idemStore redis.IdempotencyStore
	readyDeps := map[string]controllers.Pinger{"database": dbP}
	if redisClient != nil {
		idemStore = redisClient
		readyDeps["redis"] = redisClient
	}
	idempotent := middleware.Idempotency(idemStore, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", controllers.ProjectCreate(svc.Projects, logg))
			r.Get("/", controllers.ProjectList(svc.Projects, logg))
			r.Get("/{projectId}", controllers.ProjectGet(svc.Projects, logg))
			r.Patch("/{projectId}", controllers.ProjectRename(svc.Projects, logg))
			r.Patch("/{projectId}/status", controllers.ProjectSetStatus(svc.Projects, svc.Cascade, logg))
			r.Delete("/{projectId}", controllers.ProjectDelete(svc.Cascade, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.CategoryCreate(svc.Categories, logg))
			r.Get("/", controllers.CategoryList(svc.Categories, logg))
			r.Get("/{categoryId}", controllers.CategoryGet(svc.Categories, logg))
			r.Patch("/{categoryId}", controllers.CategoryUpdate(svc.Categories, logg))
			r.Delete("/{categoryId}", controllers.CategoryDelete(svc.Categories, logg))
		})

		r.Route("/candidates", func(r chi.Router) {
			r.With(idempotent).Post("/", controllers.CandidateCreate(svc.Candidates, logg))
			r.Get("/", controllers.CandidateList(svc.Candidates, logg))
			r.Get("/{candidateId}", controllers.CandidateGet(svc.Candidates, logg))
			r.Patch("/{candidateId}", controllers.CandidateUpdate(svc.Candidates, logg))
			r.Delete("/{candidateId}", controllers.CandidateDelete(svc.Candidates, logg))
			r.With(idempotent).Post("/{candidateId}/promote", controllers.CandidatePromote(svc.Items, logg))
		})

		r.Route("/items", func(r chi.Router) {
			r.With(idempotent).Post("/", controllers.ItemCreate(svc.Items, logg))
			r.Get("/", controllers.ItemList(svc.Items, logg))
			r.Get("/{itemId}", controllers.ItemGet(svc.Items, logg))
			r.Patch("/{itemId}", controllers.ItemUpdate(svc.Items, logg))
			r.Delete("/{itemId}", controllers.ItemDelete(svc.Cascade, logg))
		})

		r.Get("/item-details/{itemId}", controllers.ItemDetailGet(svc.Lots, logg))
		r.Put("/item-details/{itemId}", controllers.ItemDetailUpsert(svc.Lots, logg))

		r.Get("/catalogue/{id}", controllers.CatalogueMerge(svc.Catalogue, logg))
		r.Delete("/catalogue/{id}", controllers.CatalogueDelete(svc.Cascade, logg))
	})

	return r
}
