package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

// Pinger is satisfied by the database and redis clients.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Catalogue-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every dependency. Nil entries are skipped so optional
// dependencies such as redis can be left out.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Catalogue-Env", cfg.App.Env)
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable").WithStep("health."+name))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
